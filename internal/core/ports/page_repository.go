package ports

import (
	"context"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

// PageRepository defines persistence operations for content pages.
type PageRepository interface {
	Create(ctx context.Context, p *domain.Page) (*domain.Page, error)
	FindByID(ctx context.Context, id string) (*domain.Page, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Page, error)
	// List returns pages; when publishedOnly is set, drafts are excluded.
	List(ctx context.Context, publishedOnly bool) ([]*domain.Page, error)
	Update(ctx context.Context, p *domain.Page) (*domain.Page, error)
	Delete(ctx context.Context, id string) error
}
