package pool

import (
	"strings"
	"time"

	"cozycup/internal/pkg/errs"
	"cozycup/internal/pkg/patch"

	"github.com/google/uuid"
)

const (
	MaxNotesLength  = 300
	MaxDisplayOrder = 1_000_000
)

var (
	ErrInvalidWindow       = errs.New("startAt must be earlier than endAt")
	ErrNegativeCapacity    = errs.New("capacity must be a non-negative integer")
	ErrCapacityBelowBooked = errs.New("capacity cannot be lower than bookedCount")
	ErrInvalidStatus       = errs.New("status must be open|closed")
	ErrDisplayOrderRange   = errs.New("displayOrder out of range")
	ErrNotesTooLong        = errs.New("notes too long (max 300)")
	ErrEmptyPatch          = errs.New("no updatable fields provided")

	// reserve failure reasons, in the order they are reported
	ErrNotOpen         = errs.New("not open/active")
	ErrAlreadyStarted  = errs.New("already started")
	ErrFull            = errs.New("is full")
	ErrUnableToReserve = errs.New("unable to reserve capacity")
	ErrOverCapacity    = errs.New("over capacity")
)

// Pool is a time-bounded resource with a capacity ceiling, rendered to clients
// as a pickup window or a seating slot depending on its kind.
type Pool struct {
	id           uuid.UUID
	kind         Kind
	startAt      time.Time
	endAt        time.Time
	capacity     int
	bookedCount  int
	status       Status
	isActive     bool
	isDeleted    bool
	displayOrder int
	notes        string
	createdAt    time.Time
	updatedAt    time.Time
}

type Params struct {
	Kind         Kind
	StartAt      time.Time
	EndAt        time.Time
	Capacity     int
	Status       Status
	IsActive     bool
	DisplayOrder int
	Notes        string
}

func NewPool(p Params, now time.Time) (*Pool, error) {
	status := p.Status
	if status == "" {
		status = StatusOpen
	}
	pl := &Pool{
		id:           uuid.New(),
		kind:         p.Kind,
		startAt:      p.StartAt.UTC(),
		endAt:        p.EndAt.UTC(),
		capacity:     p.Capacity,
		status:       status,
		isActive:     p.IsActive,
		displayOrder: p.DisplayOrder,
		notes:        strings.TrimSpace(p.Notes),
		createdAt:    now,
		updatedAt:    now,
	}
	if err := pl.validate(); err != nil {
		return nil, err
	}
	return pl, nil
}

func Reconstruct(
	id uuid.UUID,
	kind Kind,
	startAt, endAt time.Time,
	capacity, bookedCount int,
	status Status,
	isActive, isDeleted bool,
	displayOrder int,
	notes string,
	createdAt, updatedAt time.Time,
) *Pool {
	return &Pool{
		id:           id,
		kind:         kind,
		startAt:      startAt,
		endAt:        endAt,
		capacity:     capacity,
		bookedCount:  bookedCount,
		status:       status,
		isActive:     isActive,
		isDeleted:    isDeleted,
		displayOrder: displayOrder,
		notes:        notes,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Pool) validate() error {
	if !p.startAt.Before(p.endAt) {
		return ErrInvalidWindow
	}
	if p.capacity < 0 {
		return ErrNegativeCapacity
	}
	if p.bookedCount > p.capacity {
		return ErrCapacityBelowBooked
	}
	if !p.status.IsValid() {
		return ErrInvalidStatus
	}
	if p.displayOrder < -MaxDisplayOrder || p.displayOrder > MaxDisplayOrder {
		return ErrDisplayOrderRange
	}
	if len([]rune(p.notes)) > MaxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}

// Patch carries the host-editable fields; nil means "leave as is".
type Patch struct {
	StartAt      *time.Time
	EndAt        *time.Time
	Capacity     *int
	Status       *Status
	IsActive     *bool
	IsDeleted    *bool
	DisplayOrder *int
	Notes        *string
}

func (p Patch) IsEmpty() bool {
	return p.StartAt == nil && p.EndAt == nil && p.Capacity == nil && p.Status == nil &&
		p.IsActive == nil && p.IsDeleted == nil && p.DisplayOrder == nil && p.Notes == nil
}

// ApplyPatch merges p into the pool and re-checks every invariant against the merged state.
func (p *Pool) ApplyPatch(ch Patch, now time.Time) error {
	if ch.IsEmpty() {
		return ErrEmptyPatch
	}
	if ch.StartAt != nil && ch.EndAt != nil && !ch.StartAt.Before(*ch.EndAt) {
		return ErrInvalidWindow
	}
	next := *p
	next.startAt = patch.Coalesce(ch.StartAt, p.startAt).UTC()
	next.endAt = patch.Coalesce(ch.EndAt, p.endAt).UTC()
	next.capacity = patch.Coalesce(ch.Capacity, p.capacity)
	next.status = patch.Coalesce(ch.Status, p.status)
	next.isActive = patch.Coalesce(ch.IsActive, p.isActive)
	next.isDeleted = patch.Coalesce(ch.IsDeleted, p.isDeleted)
	next.displayOrder = patch.Coalesce(ch.DisplayOrder, p.displayOrder)
	if ch.Notes != nil {
		next.notes = strings.TrimSpace(*ch.Notes)
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*p = next
	return nil
}

// Reservable reports whether one more unit may be taken at now.
func (p *Pool) Reservable(now time.Time) bool {
	return p.ClassifyReserveFailure(now) == nil
}

// ClassifyReserveFailure explains why a conditional reserve matched nothing,
// reporting the most specific condition first. A nil result means the pool
// looked reservable on this read, so the caller lost a race.
func (p *Pool) ClassifyReserveFailure(now time.Time) error {
	switch {
	case p.isDeleted || !p.isActive || p.status != StatusOpen:
		return ErrNotOpen
	case p.startAt.Before(now):
		return ErrAlreadyStarted
	case p.bookedCount >= p.capacity:
		return ErrFull
	default:
		return nil
	}
}

func (p *Pool) OverCapacity() bool {
	return p.bookedCount > p.capacity
}

func (p *Pool) Remaining() int {
	if r := p.capacity - p.bookedCount; r > 0 {
		return r
	}
	return 0
}

// Usable reports whether check-in may still happen against the pool.
func (p *Pool) Usable() bool {
	return !p.isDeleted && p.isActive
}

func (p *Pool) ID() uuid.UUID        { return p.id }
func (p *Pool) Kind() Kind           { return p.kind }
func (p *Pool) StartAt() time.Time   { return p.startAt }
func (p *Pool) EndAt() time.Time     { return p.endAt }
func (p *Pool) Capacity() int        { return p.capacity }
func (p *Pool) BookedCount() int     { return p.bookedCount }
func (p *Pool) Status() Status       { return p.status }
func (p *Pool) IsActive() bool       { return p.isActive }
func (p *Pool) IsDeleted() bool      { return p.isDeleted }
func (p *Pool) DisplayOrder() int    { return p.displayOrder }
func (p *Pool) Notes() string        { return p.notes }
func (p *Pool) CreatedAt() time.Time { return p.createdAt }
func (p *Pool) UpdatedAt() time.Time { return p.updatedAt }
