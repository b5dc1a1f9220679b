package http

import (
	"github.com/gin-gonic/gin"
)

// StoreRoutes handles storefront route registration: menu, quotes,
// cart, customizer, and checkout. The storefront is always public;
// sessions are tracked by header, not by account.
type StoreRoutes struct {
	handler *Handler
}

// NewStoreRoutes creates a new StoreRoutes instance.
func NewStoreRoutes(handler *Handler) *StoreRoutes {
	return &StoreRoutes{handler: handler}
}

// RegisterPublicRoutes registers the storefront routes.
func (r *StoreRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/menu", r.handler.GetMenu)
	rg.GET("/menu/catalog", r.handler.GetCatalog)
	rg.POST("/menu/filter", r.handler.FilterMenu)

	rg.POST("/quote", r.handler.QuotePizza)

	cart := rg.Group("/cart")
	{
		cart.GET("", r.handler.GetCart)
		cart.DELETE("", r.handler.ClearCart)
		cart.POST("/items", r.handler.AddCartItem)
		cart.PUT("/items/:id", r.handler.UpdateCartItem)
		cart.DELETE("/items/:id", r.handler.RemoveCartItem)
	}

	customizer := rg.Group("/customizer")
	{
		customizer.POST("", r.handler.StartDraft)
		customizer.GET("", r.handler.GetDraft)
		customizer.PUT("/size", r.handler.SetDraftSize)
		customizer.PUT("/crust", r.handler.SetDraftCrust)
		customizer.PUT("/sauce", r.handler.SetDraftSauce)
		customizer.POST("/toppings/:id/toggle", r.handler.ToggleDraftTopping)
		customizer.PUT("/toppings/:id", r.handler.SetDraftToppingGrams)
		customizer.PUT("/quantity", r.handler.SetDraftQuantity)
		customizer.POST("/commit", r.handler.CommitDraft)
	}

	rg.POST("/checkout", r.handler.Checkout)
}

// GetHandler returns the underlying storefront handler.
func (r *StoreRoutes) GetHandler() *Handler {
	return r.handler
}
