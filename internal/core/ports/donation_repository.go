package ports

import (
	"context"
	"time"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

// MaxDonationPageSize caps the page size for donation listings.
const MaxDonationPageSize = 100

// ListDonationsFilter carries query parameters for listing donations.
type ListDonationsFilter struct {
	Status domain.DonationStatus // optional: filter by status
	Fund   string                // optional: filter by fund designation
	Page   int                   // 1-based
	Limit  int                   // max rows per page (capped at MaxDonationPageSize)
}

// Clamped returns a copy with Page and Limit forced into their valid ranges.
// Both the service and the pagination envelope use this, so the limit reported
// to clients is always the limit actually applied.
func (f ListDonationsFilter) Clamped() ListDonationsFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > MaxDonationPageSize {
		f.Limit = MaxDonationPageSize
	}
	return f
}

// DonationRepository defines persistence operations for donation records.
type DonationRepository interface {
	Create(ctx context.Context, d *domain.Donation) (*domain.Donation, error)
	FindByID(ctx context.Context, id string) (*domain.Donation, error)
	// List returns a page of donations matching filter and the total count.
	List(ctx context.Context, filter ListDonationsFilter) ([]*domain.Donation, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.DonationStatus, at time.Time) (*domain.Donation, error)
	Delete(ctx context.Context, id string) error
}

// AuditRepository appends donation audit trail entries.
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.DonationAudit) error
	ListByDonation(ctx context.Context, donationID string) ([]*domain.DonationAudit, error)
}
