package ports

import (
	"context"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

// GalleryRepository defines persistence operations for gallery media records.
type GalleryRepository interface {
	Create(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error)
	FindByID(ctx context.Context, id string) (*domain.GalleryItem, error)
	// List returns items ordered by sort_order; category filters when non-empty.
	List(ctx context.Context, category string) ([]*domain.GalleryItem, error)
	Update(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}
