package domain

import "time"

// DonationStatus represents the lifecycle state of a donation record.
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationSucceeded DonationStatus = "succeeded"
	DonationFailed    DonationStatus = "failed"
	DonationRefunded  DonationStatus = "refunded"
)

// validTransitions defines the allowed status state machine.
var validTransitions = map[DonationStatus][]DonationStatus{
	DonationPending:   {DonationSucceeded, DonationFailed},
	DonationSucceeded: {DonationRefunded},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s DonationStatus) CanTransitionTo(next DonationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidDonationStatus reports whether s is a known status value.
func ValidDonationStatus(s DonationStatus) bool {
	switch s {
	case DonationPending, DonationSucceeded, DonationFailed, DonationRefunded:
		return true
	}
	return false
}

// DonationAudit is one append-only audit trail entry recording a status change.
type DonationAudit struct {
	DonationID string         `json:"donation_id" bson:"donation_id"`
	From       DonationStatus `json:"from" bson:"from"`
	To         DonationStatus `json:"to" bson:"to"`
	ActorID    string         `json:"actor_id" bson:"actor_id"`
	Note       string         `json:"note,omitempty" bson:"note,omitempty"`
	At         time.Time      `json:"at" bson:"at"`
}

// Donation is a single donation record. Amount is in minor currency units
// (cents); gateway configs are stored elsewhere and never executed here.
type Donation struct {
	ID         string         `json:"id" bson:"_id,omitempty"`
	DonorName  string         `json:"donor_name" bson:"donor_name"`
	DonorEmail string         `json:"donor_email,omitempty" bson:"donor_email,omitempty"`
	Fund       string         `json:"fund" bson:"fund"`
	Amount     int64          `json:"amount" bson:"amount"`
	Currency   string         `json:"currency" bson:"currency"`
	Method     string         `json:"method" bson:"method"`
	GatewayRef string         `json:"gateway_ref,omitempty" bson:"gateway_ref,omitempty"`
	Status     DonationStatus `json:"status" bson:"status"`
	Note       string         `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt  time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" bson:"updated_at"`
}
