package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pizza-service/internal/domain/dto"
	"github.com/guttosm/pizza-service/internal/i18n"
	"github.com/guttosm/pizza-service/internal/metrics"
	"github.com/guttosm/pizza-service/internal/middleware"
	"github.com/guttosm/pizza-service/internal/service"
)

// GetCart handles GET /api/cart requests.
//
// @Summary      Get the current cart
// @Description  Returns the session's cart snapshot with totals. Sessions are identified by the X-Session-ID header; a new id is minted and echoed back when the header is absent.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Success      200 {object} dto.SuccessResponse "Cart snapshot"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snap, err := h.carts.Get(c.Request.Context(), h.sessionID(c))
	if err != nil {
		serviceError(builder, err)
		return
	}
	builder.SuccessOK(snap)
}

// AddCartItem handles POST /api/cart/items requests.
//
// @Summary      Add a pizza to the cart
// @Description  Adds a quantity of a pizza configuration to the cart. A structurally identical pizza merges into the existing line; otherwise a new line is appended. Supports idempotency via Idempotency-Key header.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AddCartItemRequest true "Pizza and quantity"
// @Success      200 {object} dto.SuccessResponse "Updated cart snapshot"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid pizza or quantity"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items [post]
func (h *Handler) AddCartItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		metrics.RecordCartOperation("add", "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuantity, err)
		return
	}

	sessionID := h.sessionID(c)
	h.auditCart(c, "add_to_cart", "Pizza added to cart", map[string]interface{}{
		"pizza_id": req.Pizza.ID,
		"quantity": req.Quantity,
	})

	snap, err := h.carts.Add(c.Request.Context(), sessionID, req.Pizza, req.Quantity)
	if err != nil {
		metrics.RecordCartOperation("add", "error")
		serviceError(builder, err)
		return
	}

	metrics.RecordCartOperation("add", "success")
	builder.SuccessOK(snap)
}

// UpdateCartItem handles PUT /api/cart/items/:id requests.
//
// @Summary      Update a cart line's quantity
// @Description  Sets a cart line to an absolute quantity, recomputing its totals. A zero or negative quantity removes the line.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Param        id path string true "Cart line id"
// @Param        request body dto.UpdateCartItemRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse "Updated cart snapshot"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid body"
// @Failure      404 {object} dto.ErrorResponse "Not found - no such cart line"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items/{id} [put]
func (h *Handler) UpdateCartItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	snap, err := h.carts.UpdateQuantity(c.Request.Context(), h.sessionID(c), c.Param("id"), req.Quantity)
	if err != nil {
		metrics.RecordCartOperation("update", "error")
		serviceError(builder, err)
		return
	}

	metrics.RecordCartOperation("update", "success")
	builder.SuccessOK(snap)
}

// RemoveCartItem handles DELETE /api/cart/items/:id requests.
//
// @Summary      Remove a cart line
// @Description  Removes a line from the cart. Removing an id that is not present is a no-op and still returns the current snapshot.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Param        id path string true "Cart line id"
// @Success      200 {object} dto.SuccessResponse "Updated cart snapshot"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/items/{id} [delete]
func (h *Handler) RemoveCartItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snap, err := h.carts.Remove(c.Request.Context(), h.sessionID(c), c.Param("id"))
	if err != nil {
		metrics.RecordCartOperation("remove", "error")
		serviceError(builder, err)
		return
	}

	metrics.RecordCartOperation("remove", "success")
	builder.SuccessOK(snap)
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Clear the cart
// @Description  Empties the session's cart.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Success      200 {object} dto.SuccessResponse "Empty cart snapshot"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart [delete]
func (h *Handler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snap, err := h.carts.Clear(c.Request.Context(), h.sessionID(c))
	if err != nil {
		metrics.RecordCartOperation("clear", "error")
		serviceError(builder, err)
		return
	}

	metrics.RecordCartOperation("clear", "success")
	builder.SuccessOK(snap)
}

// auditCart writes an async audit entry when a logging service is wired.
func (h *Handler) auditCart(c *gin.Context, action, message string, details ...map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			var d map[string]interface{}
			if len(details) > 0 {
				d = details[0]
			}
			middleware.AuditLog(ls, c, action, message, d)
		}
	}
}
