package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
	"github.com/gracepoint/church-admin-api/internal/core/ports"
)

// GatewayService stores payment gateway configuration. Configs are data only;
// no payment traffic ever flows through this service.
type GatewayService struct {
	repo ports.GatewayRepository
	log  zerolog.Logger
}

func NewGatewayService(repo ports.GatewayRepository, log zerolog.Logger) *GatewayService {
	return &GatewayService{repo: repo, log: log}
}

func (s *GatewayService) Create(ctx context.Context, in ports.GatewayInput) (*domain.GatewayConfig, error) {
	provider := strings.ToLower(strings.TrimSpace(in.Provider))

	if existing, err := s.repo.FindByProvider(ctx, provider); err == nil && existing != nil {
		return nil, domain.ErrGatewayExists
	} else if err != nil && !errors.Is(err, domain.ErrGatewayNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	gateway := &domain.GatewayConfig{
		Provider:       provider,
		Label:          in.Label,
		PublishableKey: in.PublishableKey,
		SecretKey:      in.SecretKey,
		Fund:           in.Fund,
		Active:         in.Active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, gateway)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("provider", provider).Msg("payment gateway configured")
	return created, nil
}

func (s *GatewayService) Get(ctx context.Context, id string) (*domain.GatewayConfig, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GatewayService) List(ctx context.Context) ([]*domain.GatewayConfig, error) {
	return s.repo.List(ctx)
}

// Update merges the incoming fields. An empty SecretKey keeps the stored
// secret so admins can edit a config without re-entering it.
func (s *GatewayService) Update(ctx context.Context, id string, in ports.GatewayInput) (*domain.GatewayConfig, error) {
	gateway, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Provider != "" {
		gateway.Provider = strings.ToLower(strings.TrimSpace(in.Provider))
	}
	if in.Label != "" {
		gateway.Label = in.Label
	}
	if in.PublishableKey != "" {
		gateway.PublishableKey = in.PublishableKey
	}
	if in.SecretKey != "" {
		gateway.SecretKey = in.SecretKey
	}
	gateway.Fund = in.Fund
	gateway.Active = in.Active
	gateway.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, gateway)
}

func (s *GatewayService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
