package reservation

import "cozycup/internal/domain/pool"

// Kind selects the state machine and whether line items are carried.
type Kind string

const (
	KindOrder   Kind = "order"
	KindBooking Kind = "booking"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return k == KindOrder || k == KindBooking
}

func (k Kind) HasLineItems() bool {
	return k == KindOrder
}

func (k Kind) PoolKind() pool.Kind {
	if k == KindBooking {
		return pool.KindSlot
	}
	return pool.KindPickupWindow
}

func (k Kind) InitialStatus() Status {
	if k == KindBooking {
		return StatusBooked
	}
	return StatusConfirmed
}

func (k Kind) Label() string {
	if k == KindBooking {
		return "Booking"
	}
	return "Order"
}

type Status string

const (
	// order
	StatusConfirmed Status = "CONFIRMED"
	StatusInPrep    Status = "IN_PREP"
	StatusReady     Status = "READY"
	StatusPickedUp  Status = "PICKED_UP"

	// booking
	StatusBooked    Status = "BOOKED"
	StatusCheckedIn Status = "CHECKED_IN"

	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

// BelongsTo reports whether s is a state of kind's machine.
func (s Status) BelongsTo(k Kind) bool {
	switch k {
	case KindOrder:
		switch s {
		case StatusConfirmed, StatusInPrep, StatusReady, StatusPickedUp, StatusCancelled:
			return true
		}
	case KindBooking:
		switch s {
		case StatusBooked, StatusCheckedIn, StatusCancelled:
			return true
		}
	}
	return false
}

func NewStatus(k Kind, s string) (Status, error) {
	status := Status(s)
	if !status.BelongsTo(k) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Actor records who moved a reservation out of its initial state.
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorHost     Actor = "host"
	ActorKiosk    Actor = "kiosk"
)

func (a Actor) String() string {
	return string(a)
}
