package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
	Disclaimer string      `json:"disclaimer,omitempty"`
	Timestamp  string      `json:"timestamp,omitempty"`
	RequestID  string      `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// SuccessWithDisclaimer sends data accompanied by a top-level disclaimer string
func SuccessWithDisclaimer(c *gin.Context, data interface{}, disclaimer string) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       data,
		Disclaimer: disclaimer,
		RequestID:  requestID(c),
	})
}

// Healthy sends the liveness response with the current timestamp
func Healthy(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Success:   true,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Errors:    err,
		RequestID: requestID(c),
	})
}

// ValidationFailed sends the 400 envelope with per-field errors
func ValidationFailed(c *gin.Context, fieldErrors interface{}) {
	c.JSON(http.StatusBadRequest, Response{
		Success:   false,
		Message:   "Validation failed",
		Errors:    fieldErrors,
		RequestID: requestID(c),
	})
}
