package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
	"github.com/gracepoint/church-admin-api/internal/core/ports"
)

// PageCache abstracts the published-page cache (Redis). A miss returns
// (nil, nil) so cache errors and misses stay distinguishable.
type PageCache interface {
	GetPage(ctx context.Context, slug string) (*domain.Page, error)
	SetPage(ctx context.Context, p *domain.Page) error
	Invalidate(ctx context.Context, slug string) error
}

// PageService implements content page CRUD with a cache-first public read path.
type PageService struct {
	repo  ports.PageRepository
	cache PageCache
	log   zerolog.Logger
}

func NewPageService(repo ports.PageRepository, cache PageCache, log zerolog.Logger) *PageService {
	return &PageService{repo: repo, cache: cache, log: log}
}

func (s *PageService) Create(ctx context.Context, in ports.PageInput) (*domain.Page, error) {
	now := time.Now().UTC()
	page := &domain.Page{
		Slug:      normalizeSlug(in.Slug),
		Title:     in.Title,
		Sections:  in.Sections,
		Published: in.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.Create(ctx, page)
}

func (s *PageService) Get(ctx context.Context, id string) (*domain.Page, error) {
	return s.repo.FindByID(ctx, id)
}

// GetPublished serves the public site. Cache errors degrade to a repository
// read rather than failing the request.
func (s *PageService) GetPublished(ctx context.Context, slug string) (*domain.Page, error) {
	slug = normalizeSlug(slug)

	cached, err := s.cache.GetPage(ctx, slug)
	if err != nil {
		s.log.Warn().Err(err).Str("slug", slug).Msg("page cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	page, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !page.Published {
		return nil, domain.ErrPageNotFound
	}

	if err := s.cache.SetPage(ctx, page); err != nil {
		s.log.Warn().Err(err).Str("slug", slug).Msg("page cache write failed")
	}
	return page, nil
}

func (s *PageService) List(ctx context.Context, publishedOnly bool) ([]*domain.Page, error) {
	return s.repo.List(ctx, publishedOnly)
}

func (s *PageService) Update(ctx context.Context, id string, in ports.PageInput) (*domain.Page, error) {
	page, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldSlug := page.Slug
	page.Slug = normalizeSlug(in.Slug)
	page.Title = in.Title
	page.Sections = in.Sections
	page.Published = in.Published
	page.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, page)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, oldSlug)
	if updated.Slug != oldSlug {
		s.invalidate(ctx, updated.Slug)
	}
	return updated, nil
}

func (s *PageService) Delete(ctx context.Context, id string) error {
	page, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, page.Slug)
	return nil
}

func (s *PageService) invalidate(ctx context.Context, slug string) {
	if err := s.cache.Invalidate(ctx, slug); err != nil {
		s.log.Warn().Err(err).Str("slug", slug).Msg("page cache invalidation failed")
	}
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
