package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/api/metrics"
	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// OrderHandler handles purchase routes. Every route is bearer-only; the
// owning user always comes from the token, never the body.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type createOrderRequest struct {
	Name       string          `json:"name"       validate:"required"`
	Email      string          `json:"email"      validate:"required,email"`
	Phone      string          `json:"phone"`
	Address    json.RawMessage `json:"address"`
	ProductIDs []string        `json:"productIds" validate:"required,min=1"`
	TotalPrice float64         `json:"totalPrice" validate:"gte=0"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type orderEnvelope struct {
	Message string        `json:"message"`
	Order   *domain.Order `json:"order"`
}

type orderListResponse struct {
	Message string         `json:"message"`
	Orders  []domain.Order `json:"orders"`
}

// flattenAddress accepts either a plain string or a structured object and
// renders it as a single shipping line.
func flattenAddress(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj struct {
		City    string `json:"city"`
		State   string `json:"state"`
		Country string `json:"country"`
		Zipcode string `json:"zipcode"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}

	parts := make([]string, 0, 4)
	for _, p := range []string{obj.City, obj.State, obj.Country, obj.Zipcode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Create handles POST /api/orders. A repeated Idempotency-Key header returns
// the previously created order with 200 instead of writing a duplicate.
func (h *OrderHandler) Create(c echo.Context) error {
	userID, _, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, replayed, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		UserID:         userID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        flattenAddress(req.Address),
		ProductIDs:     req.ProductIDs,
		TotalPrice:     req.TotalPrice,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	if replayed {
		metrics.OrdersCreatedTotal.WithLabelValues("replayed").Inc()
		return c.JSON(http.StatusOK, orderEnvelope{Message: "order already placed", Order: order})
	}
	metrics.OrdersCreatedTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, orderEnvelope{Message: "order placed", Order: order})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderListResponse{Message: "orders retrieved", Orders: orders})
}

// ListByEmail handles GET /api/orders/email/:email.
func (h *OrderHandler) ListByEmail(c echo.Context) error {
	orders, err := h.service.ListByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderListResponse{Message: "orders retrieved", Orders: orders})
}

// UpdateStatus handles PUT /api/orders/:id.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderEnvelope{Message: "order updated", Order: order})
}

// Delete handles DELETE /api/orders/:id. Soft delete only.
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "order deactivated"})
}
