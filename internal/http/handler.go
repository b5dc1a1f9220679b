package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/guttosm/pizza-service/internal/domain/dto"
	"github.com/guttosm/pizza-service/internal/domain/model"
	"github.com/guttosm/pizza-service/internal/i18n"
	"github.com/guttosm/pizza-service/internal/metrics"
	"github.com/guttosm/pizza-service/internal/service"
)

// SessionHeader carries the storefront session id. The server mints one
// when a request arrives without it and echoes it back, so browsers keep
// their cart across requests without logging in.
const SessionHeader = "X-Session-ID"

// Handler provides HTTP handlers for the storefront routes.
type Handler struct {
	catalog    service.CatalogProvider
	pricing    service.PricingEngine
	carts      service.CartService
	customizer service.CustomizerService
	orders     service.OrderService
}

// NewHandler creates a new Handler instance.
func NewHandler(
	catalog service.CatalogProvider,
	pricing service.PricingEngine,
	carts service.CartService,
	customizer service.CustomizerService,
	orders service.OrderService,
) *Handler {
	return &Handler{
		catalog:    catalog,
		pricing:    pricing,
		carts:      carts,
		customizer: customizer,
		orders:     orders,
	}
}

// sessionID resolves the storefront session, minting a fresh one when
// the client has none yet. The id is always echoed on the response.
func (h *Handler) sessionID(c *gin.Context) string {
	id := c.GetHeader(SessionHeader)
	if id == "" {
		id = uuid.New().String()
	}
	c.Header(SessionHeader, id)
	return id
}

// serviceError maps domain errors onto HTTP responses.
func serviceError(builder *ResponseBuilder, err error) {
	var resolution *model.ConfigResolutionError
	switch {
	case errors.As(err, &resolution):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownComponent, err)
	case errors.Is(err, service.ErrEmptyCart):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyEmptyCart, err)
	case errors.Is(err, service.ErrLineNotFound),
		errors.Is(err, service.ErrNoDraft),
		errors.Is(err, service.ErrPresetNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, service.ErrInvalidStatus):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// QuotePizza handles POST /api/quote requests.
//
// @Summary      Quote a pizza configuration
// @Description  Computes the unit price, unit calories, and vegan status of a single pizza configuration. Custom-built pizzas (id prefixed "custom-") carry the customization surcharge on price; calories never carry it. Fails if any referenced size, crust, sauce, or topping id is not in the catalog.
// @Tags         Menu
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Pizza configuration"
// @Success      200 {object} dto.SuccessResponse "Quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid pizza or unknown component id"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/quote [post]
func (h *Handler) QuotePizza(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		metrics.RecordQuote(0, "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	start := time.Now()
	quote, err := h.pricing.Quote(req.Pizza)
	if err != nil {
		metrics.RecordQuote(time.Since(start), "error")
		serviceError(builder, err)
		return
	}

	metrics.RecordQuote(time.Since(start), "success")
	builder.SuccessOK(quote)
}
