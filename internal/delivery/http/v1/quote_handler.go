package v1

import (
	"errors"
	"net/http"

	"go-forex-backend/internal/delivery/http/response"
	"go-forex-backend/internal/domain"
	"go-forex-backend/pkg/apperror"
	"go-forex-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewQuoteHandler registers the quote route (public, no auth required)
func NewQuoteHandler(api *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &QuoteHandler{
		submissionUC: submissionUC,
	}

	api.POST("/quote", handler.RequestQuote)
}

// RequestQuote godoc
// @Summary      Request a Quote
// @Description  Submit a quote request. Amount and currency are optional.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        quote  body      domain.QuoteRequest  true  "Quote Request Data"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /quote [post]
func (h *QuoteHandler) RequestQuote(c *gin.Context) {
	var req domain.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.submissionUC.SendQuoteRequest(c.Request.Context(), &req); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			c.Error(vErr)
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to submit quote request. Please try again or call us directly.", err))
		return
	}

	response.Success(c, http.StatusOK, "Quote request submitted successfully! We will provide you with the best rates within 2 hours.", nil)
}
