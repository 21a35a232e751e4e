package reservation

import (
	"time"

	"cozycup/internal/domain/pool"
	"cozycup/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errs.New("invalid reservation status")
	ErrInvalidKind       = errs.New("invalid reservation kind")
	ErrInvalidQuantity   = errs.New("quantity must be between 1 and 100")
	ErrNegativePrice     = errs.New("price cannot be negative")
	ErrNoItems           = errs.New("order must contain at least one item")
	ErrUnexpectedItems   = errs.New("booking does not carry line items")
	ErrPoolKindMismatch  = errs.New("pool kind does not match reservation kind")
	ErrAlreadyTerminal   = errs.New("reservation is in a terminal state")
	ErrNotCheckInCapable = errs.New("only bookings can be checked in")
)

// Reservation is a customer's claim on one unit of a pool. Orders carry a
// priced list of items; bookings reserve the unit alone.
type Reservation struct {
	id          uuid.UUID
	kind        Kind
	customerID  uuid.UUID
	poolID      uuid.UUID
	status      Status
	items       []LineItem
	totals      Totals
	notes       string
	startAt     time.Time
	endAt       time.Time
	cancelledAt *time.Time
	cancelledBy *Actor
	checkedInAt *time.Time
	checkedInBy *Actor
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReservation builds the record for a unit that has already been taken from p.
// The pool's window is copied so later policy checks never reload the pool.
func NewReservation(
	kind Kind,
	customerID uuid.UUID,
	p *pool.Pool,
	items []LineItem,
	calc PriceCalculator,
	notes string,
	now time.Time,
) (*Reservation, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if p.Kind() != kind.PoolKind() {
		return nil, ErrPoolKindMismatch
	}
	if kind.HasLineItems() && len(items) == 0 {
		return nil, ErrNoItems
	}
	if !kind.HasLineItems() && len(items) > 0 {
		return nil, ErrUnexpectedItems
	}

	var totals Totals
	if kind.HasLineItems() {
		totals = calc.Calculate(customerID, items)
	}

	return &Reservation{
		id:         uuid.New(),
		kind:       kind,
		customerID: customerID,
		poolID:     p.ID(),
		status:     kind.InitialStatus(),
		items:      items,
		totals:     totals,
		notes:      normalizeNotes(notes),
		startAt:    p.StartAt(),
		endAt:      p.EndAt(),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

type Snapshot struct {
	ID          uuid.UUID
	Kind        Kind
	CustomerID  uuid.UUID
	PoolID      uuid.UUID
	Status      Status
	Items       []LineItem
	Totals      Totals
	Notes       string
	StartAt     time.Time
	EndAt       time.Time
	CancelledAt *time.Time
	CancelledBy *Actor
	CheckedInAt *time.Time
	CheckedInBy *Actor
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func Reconstruct(s Snapshot) *Reservation {
	return &Reservation{
		id:          s.ID,
		kind:        s.Kind,
		customerID:  s.CustomerID,
		poolID:      s.PoolID,
		status:      s.Status,
		items:       s.Items,
		totals:      s.Totals,
		notes:       s.Notes,
		startAt:     s.StartAt,
		endAt:       s.EndAt,
		cancelledAt: s.CancelledAt,
		cancelledBy: s.CancelledBy,
		checkedInAt: s.CheckedInAt,
		checkedInBy: s.CheckedInBy,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
	}
}

func (r *Reservation) Snapshot() Snapshot {
	return Snapshot{
		ID:          r.id,
		Kind:        r.kind,
		CustomerID:  r.customerID,
		PoolID:      r.poolID,
		Status:      r.status,
		Items:       r.items,
		Totals:      r.totals,
		Notes:       r.notes,
		StartAt:     r.startAt,
		EndAt:       r.endAt,
		CancelledAt: r.cancelledAt,
		CancelledBy: r.cancelledBy,
		CheckedInAt: r.checkedInAt,
		CheckedInBy: r.checkedInBy,
		CreatedAt:   r.createdAt,
		UpdatedAt:   r.updatedAt,
	}
}

// MarkStatus records a transition whose legality the caller has already checked.
// Moving into CANCELLED stamps who cancelled and when.
func (r *Reservation) MarkStatus(to Status, by Actor, now time.Time) error {
	if !to.BelongsTo(r.kind) {
		return ErrInvalidStatus
	}
	if to == StatusCancelled {
		at := now
		actor := by
		r.cancelledAt = &at
		r.cancelledBy = &actor
	}
	r.status = to
	r.updatedAt = now
	return nil
}

func (r *Reservation) MarkCheckedIn(by Actor, now time.Time) error {
	if r.kind != KindBooking {
		return ErrNotCheckInCapable
	}
	if r.status != StatusBooked {
		return ErrAlreadyTerminal
	}
	at := now
	actor := by
	r.status = StatusCheckedIn
	r.checkedInAt = &at
	r.checkedInBy = &actor
	r.updatedAt = now
	return nil
}

// HoldsCapacity reports whether the reservation still occupies a pool unit that
// a cancellation would give back.
func (r *Reservation) HoldsCapacity() bool {
	return r.status == r.kind.InitialStatus()
}

func (r *Reservation) IsOwnedBy(customerID uuid.UUID) bool {
	return r.customerID == customerID
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) Kind() Kind              { return r.kind }
func (r *Reservation) CustomerID() uuid.UUID   { return r.customerID }
func (r *Reservation) PoolID() uuid.UUID       { return r.poolID }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) Items() []LineItem       { return r.items }
func (r *Reservation) Totals() Totals          { return r.totals }
func (r *Reservation) Notes() string           { return r.notes }
func (r *Reservation) StartAt() time.Time      { return r.startAt }
func (r *Reservation) EndAt() time.Time        { return r.endAt }
func (r *Reservation) CancelledAt() *time.Time { return r.cancelledAt }
func (r *Reservation) CancelledBy() *Actor     { return r.cancelledBy }
func (r *Reservation) CheckedInAt() *time.Time { return r.checkedInAt }
func (r *Reservation) CheckedInBy() *Actor     { return r.checkedInBy }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
