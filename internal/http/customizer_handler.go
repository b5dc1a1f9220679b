package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pizza-service/internal/domain/dto"
	"github.com/guttosm/pizza-service/internal/i18n"
	"github.com/guttosm/pizza-service/internal/service"
)

// StartDraft handles POST /api/customizer requests.
//
// @Summary      Start a customizer draft
// @Description  Begins a build-your-own draft for the session. Without a preset id the draft seeds from defaults (first size, crust, and sauce, no toppings); with one it copies the preset for editing. The response carries the draft plus a live quote including the customization surcharge.
// @Tags         Customizer
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Param        request body dto.StartDraftRequest false "Optional preset to edit"
// @Success      200 {object} dto.SuccessResponse "Draft view"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown preset id"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/customizer [post]
func (h *Handler) StartDraft(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.StartDraftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
			return
		}
	}

	view, err := h.customizer.Start(c.Request.Context(), h.sessionID(c), req.PresetID)
	if err != nil {
		serviceError(builder, err)
		return
	}
	builder.SuccessOK(view)
}

// GetDraft handles GET /api/customizer requests.
//
// @Summary      Get the current draft
// @Tags         Customizer
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Success      200 {object} dto.SuccessResponse "Draft view"
// @Failure      404 {object} dto.ErrorResponse "Not found - no active draft"
// @Router       /api/customizer [get]
func (h *Handler) GetDraft(c *gin.Context) {
	builder := NewResponseBuilder(c)

	view, err := h.customizer.Current(c.Request.Context(), h.sessionID(c))
	if err != nil {
		serviceError(builder, err)
		return
	}
	builder.SuccessOK(view)
}

// SetDraftSize handles PUT /api/customizer/size requests.
//
// @Summary      Set the draft's size
// @Tags         Customizer
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Param        request body dto.SetComponentRequest true "Size id"
// @Success      200 {object} dto.SuccessResponse "Draft view"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown size id"
// @Failure      404 {object} dto.ErrorResponse "Not found - no active draft"
// @Router       /api/customizer/size [put]
func (h *Handler) SetDraftSize(c *gin.Context) {
	h.setDraftComponent(c, h.customizer.SetSize)
}

// SetDraftCrust handles PUT /api/customizer/crust requests.
//
// @Summary      Set the draft's crust
// @Tags         Customizer
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Param        request body dto.SetComponentRequest true "Crust id"
// @Success      200 {object} dto.SuccessResponse "Draft view"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown crust id"
// @Failure      404 {object} dto.ErrorResponse "Not found - no active draft"
// @Router       /api/customizer/crust [put]
func (h *Handler) SetDraftCrust(c *gin.Context) {
	h.setDraftComponent(c, h.customizer.SetCrust)
}

// SetDraftSauce handles PUT /api/customizer/sauce requests.
//
// @Summary      Set the draft's sauce
// @Tags         Customizer
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Param        request body dto.SetComponentRequest true "Sauce id"
// @Success      200 {object} dto.SuccessResponse "Draft view"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown sauce id"
// @Failure      404 {object} dto.ErrorResponse "Not found - no active draft"
// @Router       /api/customizer/sauce [put]
func (h *Handler) SetDraftSauce(c *gin.Context) {
	h.setDraftComponent(c, h.customizer.SetSauce)
}

// ToggleDraftTopping handles POST /api/customizer/toppings/:id/toggle requests.
//
// @Summary      Toggle a topping on the draft
// @Description  Flips a topping in or out of the draft. First selection seeds the default 20g; deselecting keeps the stored grams so re-selecting restores them.
// @Tags         Customizer
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Param        id path string true "Topping id"
// @Success      200 {object} dto.SuccessResponse "Draft view"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown topping id"
// @Failure      404 {object} dto.ErrorResponse "Not found - no active draft"
// @Router       /api/customizer/toppings/{id}/toggle [post]
func (h *Handler) ToggleDraftTopping(c *gin.Context) {
	builder := NewResponseBuilder(c)

	view, err := h.customizer.ToggleTopping(c.Request.Context(), h.sessionID(c), c.Param("id"))
	if err != nil {
		serviceError(builder, err)
		return
	}
	builder.SuccessOK(view)
}

// SetDraftToppingGrams handles PUT /api/customizer/toppings/:id requests.
//
// @Summary      Set a topping's gram quantity
// @Description  Stores a gram quantity for a topping, clamped to [10, 70].
// @Tags         Customizer
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Param        id path string true "Topping id"
// @Param        request body dto.SetToppingGramsRequest true "Gram quantity"
// @Success      200 {object} dto.SuccessResponse "Draft view"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown topping id"
// @Failure      404 {object} dto.ErrorResponse "Not found - no active draft"
// @Router       /api/customizer/toppings/{id} [put]
func (h *Handler) SetDraftToppingGrams(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SetToppingGramsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	view, err := h.customizer.SetToppingQuantity(c.Request.Context(), h.sessionID(c), c.Param("id"), req.Grams)
	if err != nil {
		serviceError(builder, err)
		return
	}
	builder.SuccessOK(view)
}

// SetDraftQuantity handles PUT /api/customizer/quantity requests.
//
// @Summary      Set the draft's quantity selector
// @Tags         Customizer
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Param        request body dto.SetDraftQuantityRequest true "Quantity"
// @Success      200 {object} dto.SuccessResponse "Draft view"
// @Failure      404 {object} dto.ErrorResponse "Not found - no active draft"
// @Router       /api/customizer/quantity [put]
func (h *Handler) SetDraftQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SetDraftQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	view, err := h.customizer.SetQuantity(c.Request.Context(), h.sessionID(c), req.Quantity)
	if err != nil {
		serviceError(builder, err)
		return
	}
	builder.SuccessOK(view)
}

// CommitDraft handles POST /api/customizer/commit requests.
//
// @Summary      Commit the draft to the cart
// @Description  Mints the custom pizza, adds it to the cart, and resets the quantity selector to 1. The configuration itself is preserved so variants can be added repeatedly.
// @Tags         Customizer
// @Produce      json
// @Param        X-Session-ID header string false "Storefront session id"
// @Success      200 {object} dto.SuccessResponse "Cart snapshot and refreshed draft"
// @Failure      404 {object} dto.ErrorResponse "Not found - no active draft"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/customizer/commit [post]
func (h *Handler) CommitDraft(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snap, view, err := h.customizer.Commit(c.Request.Context(), h.sessionID(c))
	if err != nil {
		serviceError(builder, err)
		return
	}
	builder.SuccessOK(gin.H{"cart": snap, "draft": view})
}

// setDraftComponent binds a component id and applies the given transition.
func (h *Handler) setDraftComponent(c *gin.Context, apply func(ctx context.Context, sessionID, id string) (service.DraftView, error)) {
	builder := NewResponseBuilder(c)

	var req dto.SetComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	view, err := apply(c.Request.Context(), h.sessionID(c), req.ID)
	if err != nil {
		serviceError(builder, err)
		return
	}
	builder.SuccessOK(view)
}
