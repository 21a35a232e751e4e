package wallet

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentMock PaymentMethod = "MOCK"
)

// ParsePaymentMethod maps anything other than CASH to MOCK; no real gateway is wired.
func ParsePaymentMethod(s string) PaymentMethod {
	if PaymentMethod(s) == PaymentCash {
		return PaymentCash
	}
	return PaymentMock
}

func (m PaymentMethod) String() string {
	return string(m)
}
