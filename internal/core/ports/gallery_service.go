package ports

import (
	"context"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
)

// GalleryItemInput carries the editable fields of a gallery media record.
type GalleryItemInput struct {
	Title     string
	Category  string
	ImageURL  string
	Caption   string
	SortOrder int
}

type GalleryService interface {
	Create(ctx context.Context, in GalleryItemInput) (*domain.GalleryItem, error)
	Get(ctx context.Context, id string) (*domain.GalleryItem, error)
	List(ctx context.Context, category string) ([]*domain.GalleryItem, error)
	Update(ctx context.Context, id string, in GalleryItemInput) (*domain.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}
