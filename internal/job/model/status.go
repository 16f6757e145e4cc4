package model

// PaymentStatus is the client's payment-verification state as shown on the
// job posting.
type PaymentStatus string

const (
	PaymentVerified    PaymentStatus = "verified"
	PaymentPending     PaymentStatus = "pending"
	PaymentNotVerified PaymentStatus = "not-verified"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentVerified, PaymentPending, PaymentNotVerified:
		return true
	}
	return false
}
