package ports

import (
	"context"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

// PageInput carries the editable fields of a content page.
type PageInput struct {
	Slug      string
	Title     string
	Sections  []domain.Section
	Published bool
}

type PageService interface {
	Create(ctx context.Context, in PageInput) (*domain.Page, error)
	Get(ctx context.Context, id string) (*domain.Page, error)
	// GetPublished serves the public site: published pages only, cache-first.
	GetPublished(ctx context.Context, slug string) (*domain.Page, error)
	List(ctx context.Context, publishedOnly bool) ([]*domain.Page, error)
	Update(ctx context.Context, id string, in PageInput) (*domain.Page, error)
	Delete(ctx context.Context, id string) error
}
