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

type ContactHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &ContactHandler{
		submissionUC: submissionUC,
	}

	api.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. Notifies the business inbox and emails a confirmation to the submitter.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.submissionUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			c.Error(vErr)
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to send message. Please try again or call us directly.", err))
		return
	}

	response.Success(c, http.StatusOK, "Thank you for your message! We will get back to you within 24 hours.", nil)
}

// bindError maps a JSON binding failure onto the validation envelope when the
// offending field is identifiable, a plain 400 otherwise.
func bindError(c *gin.Context, err error) {
	if vErr := validation.FromBindError(err); vErr != nil {
		c.Error(vErr)
		return
	}
	c.Error(apperror.BadRequest("Invalid request body"))
}
