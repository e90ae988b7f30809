package domain

// Absence is a leave recorded from the payment entry screen, optionally with the
// payment made for the same day.
type Absence struct {
	Leave   WorkerLeave    `json:"leave"`
	Payment *WorkerPayment `json:"payment,omitempty"`
}
