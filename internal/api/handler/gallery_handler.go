package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gracepoint/church-admin-api/internal/core/ports"
)

type GalleryHandler struct {
	galleryService ports.GalleryService
}

func NewGalleryHandler(galleryService ports.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

type galleryItemRequest struct {
	Title     string `json:"title"      validate:"required"`
	Category  string `json:"category"   validate:"required"`
	ImageURL  string `json:"image_url"  validate:"required,url"`
	Caption   string `json:"caption"`
	SortOrder int    `json:"sort_order"`
}

func (r *galleryItemRequest) toInput() ports.GalleryItemInput {
	return ports.GalleryItemInput{
		Title:     r.Title,
		Category:  r.Category,
		ImageURL:  r.ImageURL,
		Caption:   r.Caption,
		SortOrder: r.SortOrder,
	}
}

// ListPublic serves the public gallery, ordered by sort_order.
//
// @Summary      List gallery items
// @Tags         gallery
// @Produce      json
// @Param        category  query    string  false  "Filter by category"
// @Success      200       {array}  domain.GalleryItem
// @Router       /gallery [get]
func (h *GalleryHandler) ListPublic(c echo.Context) error {
	items, err := h.galleryService.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds a gallery media record.
//
// @Summary      Create a gallery item
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      galleryItemRequest  true  "Item details"
// @Success      201   {object}  domain.GalleryItem
// @Router       /admin/gallery [post]
func (h *GalleryHandler) Create(c echo.Context) error {
	var req galleryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.galleryService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update replaces a gallery item's details.
//
// @Summary      Update a gallery item
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Item id"
// @Param        body  body      galleryItemRequest  true  "Item details"
// @Success      200   {object}  domain.GalleryItem
// @Failure      404   {object}  map[string]string
// @Router       /admin/gallery/{id} [put]
func (h *GalleryHandler) Update(c echo.Context) error {
	var req galleryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.galleryService.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes a gallery item.
//
// @Summary      Delete a gallery item
// @Tags         gallery
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c echo.Context) error {
	if err := h.galleryService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
