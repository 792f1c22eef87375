package ports

import (
	"context"
	"time"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

// CreateDonationInput carries the fields needed to record a donation.
type CreateDonationInput struct {
	DonorName  string
	DonorEmail string
	Fund       string
	Amount     int64
	Currency   string
	Method     string
	GatewayRef string
	Note       string
}

// DonationEventInput is one status-change event handed to the audit pipeline.
type DonationEventInput struct {
	DonationID string
	From       domain.DonationStatus
	To         domain.DonationStatus
	ActorID    string
	Note       string
	Timestamp  time.Time
}

type DonationService interface {
	Create(ctx context.Context, in CreateDonationInput) (*domain.Donation, error)
	Get(ctx context.Context, id string) (*domain.Donation, error)
	List(ctx context.Context, filter ListDonationsFilter) ([]*domain.Donation, int64, error)
	// UpdateStatus applies a status transition, rejecting moves the state
	// machine does not allow, and fans the change out to the audit pipeline.
	UpdateStatus(ctx context.Context, id string, next domain.DonationStatus, actorID, note string) (*domain.Donation, error)
	History(ctx context.Context, id string) ([]*domain.DonationAudit, error)
	Delete(ctx context.Context, id string) error
}

// AuditService processes donation events dequeued by the dispatcher workers.
type AuditService interface {
	Process(ctx context.Context, in DonationEventInput) error
}
