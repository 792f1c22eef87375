package service

import (
	"context"
	"time"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
	"github.com/gracepoint/church-admin-api/internal/core/ports"
)

// GalleryService implements gallery media record CRUD.
type GalleryService struct {
	repo ports.GalleryRepository
}

func NewGalleryService(repo ports.GalleryRepository) *GalleryService {
	return &GalleryService{repo: repo}
}

func (s *GalleryService) Create(ctx context.Context, in ports.GalleryItemInput) (*domain.GalleryItem, error) {
	now := time.Now().UTC()
	item := &domain.GalleryItem{
		Title:     in.Title,
		Category:  in.Category,
		ImageURL:  in.ImageURL,
		Caption:   in.Caption,
		SortOrder: in.SortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.Create(ctx, item)
}

func (s *GalleryService) Get(ctx context.Context, id string) (*domain.GalleryItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GalleryService) List(ctx context.Context, category string) ([]*domain.GalleryItem, error) {
	return s.repo.List(ctx, category)
}

func (s *GalleryService) Update(ctx context.Context, id string, in ports.GalleryItemInput) (*domain.GalleryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Title = in.Title
	item.Category = in.Category
	item.ImageURL = in.ImageURL
	item.Caption = in.Caption
	item.SortOrder = in.SortOrder
	item.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, item)
}

func (s *GalleryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
