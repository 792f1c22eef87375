package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
	"github.com/gracepoint/church-admin-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that appends donation status-change
// events to the audit trail collection.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single dequeued event.
func (s *auditService) Process(ctx context.Context, in ports.DonationEventInput) error {
	entry := &domain.DonationAudit{
		DonationID: in.DonationID,
		From:       in.From,
		To:         in.To,
		ActorID:    in.ActorID,
		Note:       in.Note,
		At:         in.Timestamp,
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}

	s.log.Debug().Str("donation_id", in.DonationID).Str("to", string(in.To)).Msg("audit entry written")
	return nil
}
