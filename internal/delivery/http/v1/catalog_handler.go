package v1

import (
	"net/http"

	"go-forex-backend/internal/delivery/http/response"
	"go-forex-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUC domain.CatalogUsecase
}

// NewCatalogHandler registers the static content routes
func NewCatalogHandler(api *gin.RouterGroup, catalogUC domain.CatalogUsecase) {
	handler := &CatalogHandler{
		catalogUC: catalogUC,
	}

	api.GET("/services", handler.ListServices)
	api.GET("/exchange-rates", handler.ExchangeRates)
}

// ListServices godoc
// @Summary      List Services
// @Description  Fixed catalog of offered services.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Service}
// @Router       /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	response.Success(c, http.StatusOK, "", h.catalogUC.Services(c.Request.Context()))
}

// ExchangeRates godoc
// @Summary      Indicative Exchange Rates
// @Description  Placeholder buy/sell rates against INR, stamped at read time.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=map[string]domain.ExchangeRate}
// @Router       /exchange-rates [get]
func (h *CatalogHandler) ExchangeRates(c *gin.Context) {
	rates := h.catalogUC.ExchangeRates(c.Request.Context())
	response.SuccessWithDisclaimer(c, rates, domain.RateDisclaimer)
}
