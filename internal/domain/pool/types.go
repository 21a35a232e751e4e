package pool

type Kind string

const (
	KindPickupWindow Kind = "pickup_window"
	KindSlot         Kind = "slot"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindPickupWindow, KindSlot:
		return true
	default:
		return false
	}
}

// Label is the human name used in error messages.
func (k Kind) Label() string {
	if k == KindSlot {
		return "Slot"
	}
	return "Pickup window"
}

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
