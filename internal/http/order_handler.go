package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pizza-service/internal/domain/dto"
	"github.com/guttosm/pizza-service/internal/domain/model"
	"github.com/guttosm/pizza-service/internal/i18n"
	"github.com/guttosm/pizza-service/internal/metrics"
	"github.com/guttosm/pizza-service/internal/repository"
	"github.com/guttosm/pizza-service/internal/service"
)

// Checkout handles POST /api/checkout requests.
//
// @Summary      Place an order
// @Description  Snapshots the session's cart into an order with the given delivery details. For online payment a payment intent is opened and its client secret returned; cash on delivery skips the payment provider. The cart is cleared once the order is stored. Supports idempotency via Idempotency-Key header.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CheckoutRequest true "Delivery details and payment method"
// @Success      201 {object} dto.SuccessResponse "Placed order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid details or empty cart"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway - payment provider failure"
// @Router       /api/checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	sessionID := h.sessionID(c)
	h.auditCart(c, "checkout", "Checkout requested", map[string]interface{}{
		"payment_method": req.PaymentMethod,
	})

	result, err := h.orders.Checkout(c.Request.Context(), sessionID, req.DeliveryDetails(), req.PaymentMethod)
	if err != nil {
		serviceError(builder, err)
		return
	}

	metrics.RecordOrderPlaced(req.PaymentMethod)
	builder.SuccessCreated(result)
}

// OrdersHandler provides HTTP handlers for the admin order dashboard.
type OrdersHandler struct {
	orders service.OrderService
}

// NewOrdersHandler creates a new OrdersHandler instance.
func NewOrdersHandler(orders service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// ListOrders handles GET /api/admin/orders requests.
//
// @Summary      List orders
// @Description  Returns orders newest-first. Supports filtering by status, a free-text search over order id and customer name/email, and limit/offset pagination.
// @Tags         Orders
// @Produce      json
// @Param        status query string false "Filter by order status" Enums(pending, processing, completed, cancelled)
// @Param        search query string false "Search order id, customer name, or email"
// @Param        limit query int false "Page size" default(50)
// @Param        offset query int false "Page offset"
// @Success      200 {object} dto.SuccessResponse "Orders and total count"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown status"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - insufficient permissions"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opts := repository.OrderQueryOptions{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Limit:  50,
	}
	if opts.Status != "" && !model.ValidOrderStatus(opts.Status) {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, service.ErrInvalidStatus)
		return
	}
	if limit, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && limit > 0 {
		opts.Limit = limit
	}
	if offset, err := strconv.ParseInt(c.Query("offset"), 10, 64); err == nil && offset > 0 {
		opts.Offset = offset
	}

	orders, total, err := h.orders.ListOrders(c.Request.Context(), opts)
	if err != nil {
		serviceError(builder, err)
		return
	}
	builder.SuccessOK(gin.H{"orders": orders, "total": total})
}

// GetOrder handles GET /api/admin/orders/:id requests.
//
// @Summary      Get an order
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Public order id"
// @Success      200 {object} dto.SuccessResponse "Order"
// @Failure      404 {object} dto.ErrorResponse "Not found - no such order"
// @Security     BearerAuth
// @Router       /api/admin/orders/{id} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(builder, err)
		return
	}
	builder.SuccessOK(order)
}

// UpdateOrderStatus handles PUT /api/admin/orders/:id/status requests.
//
// @Summary      Update an order's status
// @Description  Transitions an order to a new status (pending, processing, completed, or cancelled).
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Public order id"
// @Param        request body dto.UpdateOrderStatusRequest true "New status"
// @Success      200 {object} dto.SuccessResponse "Updated order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown status"
// @Failure      404 {object} dto.ErrorResponse "Not found - no such order"
// @Security     BearerAuth
// @Router       /api/admin/orders/{id}/status [put]
func (h *OrdersHandler) UpdateOrderStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		serviceError(builder, err)
		return
	}
	builder.SuccessOK(order)
}
