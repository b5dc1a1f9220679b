package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pizza-service/internal/domain/dto"
	"github.com/guttosm/pizza-service/internal/i18n"
)

// GetMenu handles GET /api/menu requests.
//
// @Summary      List preset pizzas
// @Description  Returns all preset pizzas on the menu.
// @Tags         Menu
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Preset pizzas"
// @Router       /api/menu [get]
func (h *Handler) GetMenu(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.catalog.Menu())
}

// GetCatalog handles GET /api/menu/catalog requests.
//
// @Summary      Get the component catalog
// @Description  Returns the sizes, crusts, sauces, and toppings available for building a pizza. Loaded once at startup and immutable afterwards.
// @Tags         Menu
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Component catalog"
// @Router       /api/menu/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	catalog := h.catalog.Catalog()
	NewResponseBuilder(c).SuccessOK(gin.H{
		"sizes":    catalog.Sizes,
		"crusts":   catalog.Crusts,
		"sauces":   catalog.Sauces,
		"toppings": catalog.Toppings,
	})
}

// FilterMenu handles POST /api/menu/filter requests.
//
// @Summary      Filter preset pizzas
// @Description  Filters the menu by vegan status and a calorie ceiling. The ceiling compares against each preset's computed unit calories, so a vegan preset above the limit is still excluded.
// @Tags         Menu
// @Accept       json
// @Produce      json
// @Param        request body dto.FilterMenuRequest true "Filter criteria"
// @Success      200 {object} dto.SuccessResponse "Matching presets"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid filter body"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/menu/filter [post]
func (h *Handler) FilterMenu(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.FilterMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	presets, err := h.catalog.Filter(req.Vegan, req.MaxCalories)
	if err != nil {
		serviceError(builder, err)
		return
	}
	builder.SuccessOK(presets)
}
