package ports

import (
	"context"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

// GatewayInput carries the editable fields of a payment gateway config.
// SecretKey left empty on update keeps the stored secret.
type GatewayInput struct {
	Provider       string
	Label          string
	PublishableKey string
	SecretKey      string
	Fund           string
	Active         bool
}

type GatewayService interface {
	Create(ctx context.Context, in GatewayInput) (*domain.GatewayConfig, error)
	Get(ctx context.Context, id string) (*domain.GatewayConfig, error)
	List(ctx context.Context) ([]*domain.GatewayConfig, error)
	Update(ctx context.Context, id string, in GatewayInput) (*domain.GatewayConfig, error)
	Delete(ctx context.Context, id string) error
}
