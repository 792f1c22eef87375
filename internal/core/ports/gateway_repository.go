package ports

import (
	"context"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

// GatewayRepository defines persistence operations for payment gateway configs.
type GatewayRepository interface {
	Create(ctx context.Context, g *domain.GatewayConfig) (*domain.GatewayConfig, error)
	FindByID(ctx context.Context, id string) (*domain.GatewayConfig, error)
	FindByProvider(ctx context.Context, provider string) (*domain.GatewayConfig, error)
	List(ctx context.Context) ([]*domain.GatewayConfig, error)
	Update(ctx context.Context, g *domain.GatewayConfig) (*domain.GatewayConfig, error)
	Delete(ctx context.Context, id string) error
}
