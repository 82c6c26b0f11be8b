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

type InquiryHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewInquiryHandler registers the service inquiry route (public, no auth required)
func NewInquiryHandler(api *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &InquiryHandler{
		submissionUC: submissionUC,
	}

	api.POST("/service-inquiry", handler.SubmitInquiry)
}

// SubmitInquiry godoc
// @Summary      Submit Service Inquiry
// @Description  Register interest in a specific service.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        inquiry  body      domain.ServiceInquiryRequest  true  "Service Inquiry Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /service-inquiry [post]
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var req domain.ServiceInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.submissionUC.SendServiceInquiry(c.Request.Context(), &req); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			c.Error(vErr)
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to submit inquiry. Please try again or call us directly.", err))
		return
	}

	response.Success(c, http.StatusOK, "Service inquiry submitted! We will contact you with detailed information.", nil)
}
