package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
	"github.com/gracepoint/church-admin-api/internal/core/ports"
)

// EventEnqueuer hands status-change events to the audit dispatcher without
// blocking the request path on the audit write.
type EventEnqueuer interface {
	Enqueue(event ports.DonationEventInput)
}

// DonationService implements donation record keeping and the status state machine.
type DonationService struct {
	repo  ports.DonationRepository
	audit ports.AuditRepository
	queue EventEnqueuer
	log   zerolog.Logger
}

func NewDonationService(repo ports.DonationRepository, audit ports.AuditRepository, queue EventEnqueuer, log zerolog.Logger) *DonationService {
	return &DonationService{repo: repo, audit: audit, queue: queue, log: log}
}

func (s *DonationService) Create(ctx context.Context, in ports.CreateDonationInput) (*domain.Donation, error) {
	now := time.Now().UTC()
	donation := &domain.Donation{
		DonorName:  in.DonorName,
		DonorEmail: in.DonorEmail,
		Fund:       in.Fund,
		Amount:     in.Amount,
		Currency:   in.Currency,
		Method:     in.Method,
		GatewayRef: in.GatewayRef,
		Status:     domain.DonationPending,
		Note:       in.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, donation)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("donation_id", created.ID).Str("fund", created.Fund).Int64("amount", created.Amount).Msg("donation recorded")
	return created, nil
}

func (s *DonationService) Get(ctx context.Context, id string) (*domain.Donation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DonationService) List(ctx context.Context, filter ports.ListDonationsFilter) ([]*domain.Donation, int64, error) {
	return s.repo.List(ctx, filter.Clamped())
}

// UpdateStatus applies a status transition and fans the change out to the
// audit pipeline. Invalid target statuses and disallowed transitions are both
// rejected with ErrInvalidTransition.
func (s *DonationService) UpdateStatus(ctx context.Context, id string, next domain.DonationStatus, actorID, note string) (*domain.Donation, error) {
	if !domain.ValidDonationStatus(next) {
		return nil, fmt.Errorf("%w (unknown status %q)", domain.ErrInvalidTransition, next)
	}

	donation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !donation.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, donation.Status, next)
	}

	now := time.Now().UTC()
	updated, err := s.repo.UpdateStatus(ctx, id, next, now)
	if err != nil {
		return nil, err
	}

	s.queue.Enqueue(ports.DonationEventInput{
		DonationID: id,
		From:       donation.Status,
		To:         next,
		ActorID:    actorID,
		Note:       note,
		Timestamp:  now,
	})

	s.log.Info().Str("donation_id", id).Str("from", string(donation.Status)).Str("to", string(next)).Str("actor_id", actorID).Msg("donation status changed")
	return updated, nil
}

func (s *DonationService) History(ctx context.Context, id string) ([]*domain.DonationAudit, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.audit.ListByDonation(ctx, id)
}

func (s *DonationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
