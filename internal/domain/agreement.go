package domain

type RentalAgreementStatus string

const (
	RentalAgreementStatusPending  RentalAgreementStatus = "PENDING"
	RentalAgreementStatusAccepted RentalAgreementStatus = "ACCEPTED"
	RentalAgreementStatusRejected RentalAgreementStatus = "REJECTED"
)

// RentalAgreement is the document a customer accepts or rejects. It owns a
// unidirectional reference to its rental; "find agreement by rental" goes
// through the repository, not an object graph edge.
type RentalAgreement struct {
	ID        int64                 `json:"id"`
	Reference string                `json:"reference"`
	Agreement string                `json:"agreement"`
	Status    RentalAgreementStatus `json:"status"`
	RentalID  int64                 `json:"rental_id"`
}
