package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
	"github.com/gracepoint/church-admin-api/internal/core/ports"
)

type PageHandler struct {
	pageService ports.PageService
}

func NewPageHandler(pageService ports.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

type sectionRequest struct {
	Kind     string `json:"kind"      validate:"required,oneof=text image quote"`
	Heading  string `json:"heading"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

type pageRequest struct {
	Slug      string           `json:"slug"      validate:"required"`
	Title     string           `json:"title"     validate:"required"`
	Sections  []sectionRequest `json:"sections"  validate:"dive"`
	Published bool             `json:"published"`
}

func (r *pageRequest) toInput() ports.PageInput {
	sections := make([]domain.Section, 0, len(r.Sections))
	for _, s := range r.Sections {
		sections = append(sections, domain.Section{
			Kind:     domain.SectionKind(s.Kind),
			Heading:  s.Heading,
			Body:     s.Body,
			ImageURL: s.ImageURL,
		})
	}
	return ports.PageInput{
		Slug:      r.Slug,
		Title:     r.Title,
		Sections:  sections,
		Published: r.Published,
	}
}

// GetPublished serves a published page to the public site, cache-first.
//
// @Summary      Get a published page
// @Tags         pages
// @Produce      json
// @Param        slug  path      string  true  "Page slug"
// @Success      200   {object}  domain.Page
// @Failure      404   {object}  map[string]string
// @Router       /pages/{slug} [get]
func (h *PageHandler) GetPublished(c echo.Context) error {
	page, err := h.pageService.GetPublished(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Create adds a new content page.
//
// @Summary      Create a page
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      pageRequest  true  "Page content"
// @Success      201   {object}  domain.Page
// @Failure      409   {object}  map[string]string
// @Router       /admin/pages [post]
func (h *PageHandler) Create(c echo.Context) error {
	var req pageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	page, err := h.pageService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, page)
}

// Get returns a page by id, drafts included.
//
// @Summary      Get a page
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Page id"
// @Success      200  {object}  domain.Page
// @Failure      404  {object}  map[string]string
// @Router       /admin/pages/{id} [get]
func (h *PageHandler) Get(c echo.Context) error {
	page, err := h.pageService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// List returns all pages, drafts included.
//
// @Summary      List pages
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Page
// @Router       /admin/pages [get]
func (h *PageHandler) List(c echo.Context) error {
	pages, err := h.pageService.List(c.Request().Context(), false)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pages)
}

// Update replaces a page's content.
//
// @Summary      Update a page
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Page id"
// @Param        body  body      pageRequest  true  "Page content"
// @Success      200   {object}  domain.Page
// @Failure      404   {object}  map[string]string
// @Router       /admin/pages/{id} [put]
func (h *PageHandler) Update(c echo.Context) error {
	var req pageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	page, err := h.pageService.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Delete removes a page.
//
// @Summary      Delete a page
// @Tags         pages
// @Security     BearerAuth
// @Param        id  path  string  true  "Page id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/pages/{id} [delete]
func (h *PageHandler) Delete(c echo.Context) error {
	if err := h.pageService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
