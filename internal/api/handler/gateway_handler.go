package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gracepoint/church-admin-api/internal/core/domain"
	"github.com/gracepoint/church-admin-api/internal/core/ports"
)

type GatewayHandler struct {
	gatewayService ports.GatewayService
}

func NewGatewayHandler(gatewayService ports.GatewayService) *GatewayHandler {
	return &GatewayHandler{gatewayService: gatewayService}
}

type gatewayRequest struct {
	Provider       string `json:"provider"        validate:"required"`
	Label          string `json:"label"           validate:"required"`
	PublishableKey string `json:"publishable_key" validate:"required"`
	SecretKey      string `json:"secret_key"`
	Fund           string `json:"fund"`
	Active         bool   `json:"active"`
}

// gatewayResponse masks the secret down to its last four characters. The full
// secret never appears in a response body.
type gatewayResponse struct {
	ID             string    `json:"id"`
	Provider       string    `json:"provider"`
	Label          string    `json:"label"`
	PublishableKey string    `json:"publishable_key"`
	SecretHint     string    `json:"secret_hint"`
	Fund           string    `json:"fund,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toGatewayResponse(g *domain.GatewayConfig) gatewayResponse {
	return gatewayResponse{
		ID:             g.ID,
		Provider:       g.Provider,
		Label:          g.Label,
		PublishableKey: g.PublishableKey,
		SecretHint:     g.MaskedSecret(),
		Fund:           g.Fund,
		Active:         g.Active,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

func (r *gatewayRequest) toInput() ports.GatewayInput {
	return ports.GatewayInput{
		Provider:       r.Provider,
		Label:          r.Label,
		PublishableKey: r.PublishableKey,
		SecretKey:      r.SecretKey,
		Fund:           r.Fund,
		Active:         r.Active,
	}
}

// Create stores a new gateway configuration.
//
// @Summary      Configure a payment gateway
// @Tags         gateways
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      gatewayRequest  true  "Gateway settings"
// @Success      201   {object}  gatewayResponse
// @Failure      409   {object}  map[string]string
// @Router       /admin/gateways [post]
func (h *GatewayHandler) Create(c echo.Context) error {
	var req gatewayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	gateway, err := h.gatewayService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toGatewayResponse(gateway))
}

// List returns all gateway configurations, secrets masked.
//
// @Summary      List payment gateways
// @Tags         gateways
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  gatewayResponse
// @Router       /admin/gateways [get]
func (h *GatewayHandler) List(c echo.Context) error {
	gateways, err := h.gatewayService.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]gatewayResponse, 0, len(gateways))
	for _, g := range gateways {
		resp = append(resp, toGatewayResponse(g))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns one gateway configuration, secret masked.
//
// @Summary      Get a payment gateway
// @Tags         gateways
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Gateway id"
// @Success      200  {object}  gatewayResponse
// @Failure      404  {object}  map[string]string
// @Router       /admin/gateways/{id} [get]
func (h *GatewayHandler) Get(c echo.Context) error {
	gateway, err := h.gatewayService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGatewayResponse(gateway))
}

// Update replaces a gateway's settings. An empty secret_key keeps the stored secret.
//
// @Summary      Update a payment gateway
// @Tags         gateways
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Gateway id"
// @Param        body  body      gatewayRequest  true  "Gateway settings"
// @Success      200   {object}  gatewayResponse
// @Failure      404   {object}  map[string]string
// @Router       /admin/gateways/{id} [put]
func (h *GatewayHandler) Update(c echo.Context) error {
	var req gatewayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	gateway, err := h.gatewayService.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGatewayResponse(gateway))
}

// Delete removes a gateway configuration.
//
// @Summary      Delete a payment gateway
// @Tags         gateways
// @Security     BearerAuth
// @Param        id  path  string  true  "Gateway id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/gateways/{id} [delete]
func (h *GatewayHandler) Delete(c echo.Context) error {
	if err := h.gatewayService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
