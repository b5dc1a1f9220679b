package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizza-service/internal/middleware"
	"github.com/guttosm/pizza-service/internal/service"
)

// OrderRoutes handles admin order route registration.
type OrderRoutes struct {
	handler *OrdersHandler
}

// NewOrderRoutes creates a new OrderRoutes instance.
func NewOrderRoutes(orders service.OrderService) *OrderRoutes {
	return &OrderRoutes{handler: NewOrdersHandler(orders)}
}

// RegisterPublicRoutes registers admin order routes without authorization
// (when auth is disabled).
func (r *OrderRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	{
		admin.GET("/orders", r.handler.ListOrders)
		admin.GET("/orders/:id", r.handler.GetOrder)
		admin.PUT("/orders/:id/status", r.handler.UpdateOrderStatus)
	}
}

// RegisterProtectedRoutes registers admin order routes with permission
// checks (when auth is enabled).
func (r *OrderRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	ordersReadPermID, ordersWritePermID := r.getPermissionIDs(cfg)

	authMiddleware := func(permID string) []gin.HandlerFunc {
		if permID != "" && cfg.RoleService != nil && cfg.PermissionService != nil {
			return []gin.HandlerFunc{
				middleware.RequireAuthorization(middleware.AuthorizationConfig{
					RequiredPermissions: []string{permID},
				}, cfg.RoleService, cfg.PermissionService),
			}
		}
		return nil
	}

	admin := protected.Group("/admin")

	if readAuth := authMiddleware(ordersReadPermID); readAuth != nil {
		admin.GET("/orders", append(readAuth, r.handler.ListOrders)...)
		admin.GET("/orders/:id", append(readAuth, r.handler.GetOrder)...)
	} else {
		admin.GET("/orders", r.handler.ListOrders)
		admin.GET("/orders/:id", r.handler.GetOrder)
	}

	if writeAuth := authMiddleware(ordersWritePermID); writeAuth != nil {
		admin.PUT("/orders/:id/status", append(writeAuth, r.handler.UpdateOrderStatus)...)
	} else {
		admin.PUT("/orders/:id/status", r.handler.UpdateOrderStatus)
	}
}

// getPermissionIDs fetches permission IDs from the permission service.
func (r *OrderRoutes) getPermissionIDs(cfg *RouterConfig) (ordersReadPermID, ordersWritePermID string) {
	if cfg.PermissionService == nil {
		return "", ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ordersReadPermID = cfg.PermissionService.GetPermissionIDByResourceAndAction(ctx, "orders", "read")
	ordersWritePermID = cfg.PermissionService.GetPermissionIDByResourceAndAction(ctx, "orders", "write")

	return ordersReadPermID, ordersWritePermID
}

// GetHandler returns the underlying orders handler.
func (r *OrderRoutes) GetHandler() *OrdersHandler {
	return r.handler
}
