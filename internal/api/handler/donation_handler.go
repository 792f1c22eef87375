package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gracepoint/church-admin-api/internal/api/metrics"
	"github.com/gracepoint/church-admin-api/internal/core/domain"
	"github.com/gracepoint/church-admin-api/internal/core/ports"
)

type DonationHandler struct {
	donationService ports.DonationService
}

func NewDonationHandler(donationService ports.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

type createDonationRequest struct {
	DonorName  string `json:"donor_name"  validate:"required"`
	DonorEmail string `json:"donor_email" validate:"omitempty,email"`
	Fund       string `json:"fund"        validate:"required"`
	Amount     int64  `json:"amount"      validate:"required,gt=0"`
	Currency   string `json:"currency"    validate:"required,len=3"`
	Method     string `json:"method"      validate:"required,oneof=card bank cash other"`
	GatewayRef string `json:"gateway_ref"`
	Note       string `json:"note"`
}

type updateDonationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending succeeded failed refunded"`
	Note   string `json:"note"`
}

type listDonationsResponse struct {
	Data       []*domain.Donation `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// Create records a donation. New records always start out pending.
//
// @Summary      Record a donation
// @Tags         donations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDonationRequest  true  "Donation details"
// @Success      201   {object}  domain.Donation
// @Failure      400   {object}  map[string]string
// @Router       /admin/donations [post]
func (h *DonationHandler) Create(c echo.Context) error {
	var req createDonationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	donation, err := h.donationService.Create(c.Request().Context(), ports.CreateDonationInput{
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		Fund:       req.Fund,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Method:     req.Method,
		GatewayRef: req.GatewayRef,
		Note:       req.Note,
	})
	if err != nil {
		return err
	}

	metrics.DonationsRecordedTotal.WithLabelValues(req.Method).Inc()
	return c.JSON(http.StatusCreated, donation)
}

// List returns a page of donations, filterable by status and fund.
//
// @Summary      List donations
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        fund    query     string  false  "Filter by fund"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  listDonationsResponse
// @Router       /admin/donations [get]
func (h *DonationHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	// Clamp here too so the envelope reports the limit the service applied.
	filter := ports.ListDonationsFilter{
		Status: domain.DonationStatus(c.QueryParam("status")),
		Fund:   c.QueryParam("fund"),
		Page:   page,
		Limit:  limit,
	}.Clamped()

	donations, total, err := h.donationService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return c.JSON(http.StatusOK, listDonationsResponse{
		Data: donations,
		Pagination: paginationResponse{
			Total:      total,
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalPages: totalPages,
		},
	})
}

// Get returns a single donation.
//
// @Summary      Get a donation
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Donation id"
// @Success      200  {object}  domain.Donation
// @Failure      404  {object}  map[string]string
// @Router       /admin/donations/{id} [get]
func (h *DonationHandler) Get(c echo.Context) error {
	donation, err := h.donationService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, donation)
}

// History returns the audit trail of a donation's status changes.
//
// @Summary      Get a donation's status history
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Donation id"
// @Success      200  {array}   domain.DonationAudit
// @Failure      404  {object}  map[string]string
// @Router       /admin/donations/{id}/history [get]
func (h *DonationHandler) History(c echo.Context) error {
	entries, err := h.donationService.History(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// UpdateStatus applies a status transition. Disallowed transitions come back
// as 422, not 400: the payload is well-formed, the state machine refused it.
//
// @Summary      Update a donation's status
// @Tags         donations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                       true  "Donation id"
// @Param        body  body      updateDonationStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Donation
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /admin/donations/{id}/status [patch]
func (h *DonationHandler) UpdateStatus(c echo.Context) error {
	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateDonationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	donation, err := h.donationService.UpdateStatus(c.Request().Context(), c.Param("id"), domain.DonationStatus(req.Status), actorID, req.Note)
	if err != nil {
		return err
	}

	metrics.DonationStatusChangesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, donation)
}

// Delete removes a donation record.
//
// @Summary      Delete a donation
// @Tags         donations
// @Security     BearerAuth
// @Param        id  path  string  true  "Donation id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/donations/{id} [delete]
func (h *DonationHandler) Delete(c echo.Context) error {
	if err := h.donationService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
