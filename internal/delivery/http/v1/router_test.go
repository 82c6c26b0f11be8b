package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-forex-backend/config"
	v1 "go-forex-backend/internal/delivery/http/v1"
	"go-forex-backend/internal/domain"
	"go-forex-backend/internal/usecase"
	"go-forex-backend/pkg/email"
	"go-forex-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockDispatcher struct {
	mock.Mock
	sent []email.Message
}

func (m *MockDispatcher) Send(ctx context.Context, msg email.Message) error {
	m.sent = append(m.sent, msg)
	return m.Called(ctx, msg).Error(0)
}

type apiResponse struct {
	Success    bool                           `json:"success"`
	Message    string                         `json:"message"`
	Errors     []validation.FieldError `json:"errors"`
	Data       json.RawMessage         `json:"data"`
	Disclaimer string                  `json:"disclaimer"`
	Timestamp  string                  `json:"timestamp"`
}

func testRouter(dispatcher email.Dispatcher) *gin.Engine {
	cfg := &config.Config{
		Port:                   "3000",
		FrontendURL:            "http://localhost:8081",
		EmailUser:              "noreply@vallabhforex.com",
		CompanyEmail:           "vallabhforex@gmail.com",
		RateLimitWindowMinutes: 15,
		RateLimitMax:           1000,
		StaticDir:              "./dist",
	}
	return v1.NewRouter(v1.RouterDeps{
		SubmissionUC: usecase.NewSubmissionUsecase(dispatcher, validation.New(), cfg),
		CatalogUC:    usecase.NewCatalogUsecase(),
		Config:       cfg,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp apiResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(new(MockDispatcher))

	w, resp := doJSON(t, router, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestContactEndToEnd(t *testing.T) {
	dispatcher := new(MockDispatcher)
	dispatcher.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).Return(nil)
	router := testRouter(dispatcher)

	w, resp := doJSON(t, router, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Asha Patel",
		"email":   "asha@example.com",
		"phone":   "+919913647948",
		"service": "Travel Insurance",
		"message": "Please send me a quote for a family trip to Singapore.",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	dispatcher.AssertNumberOfCalls(t, "Send", 2)
}

func TestContactDispatchFailureReturns500(t *testing.T) {
	dispatcher := new(MockDispatcher)
	dispatcher.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).Return(errors.New("smtp down"))
	router := testRouter(dispatcher)

	w, resp := doJSON(t, router, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Asha Patel",
		"email":   "asha@example.com",
		"phone":   "+919913647948",
		"service": "Travel Insurance",
		"message": "Please send me a quote for a family trip to Singapore.",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, resp.Success)
	// Generic message only, no internals
	assert.Equal(t, "Failed to send message. Please try again or call us directly.", resp.Message)
}

func TestQuoteValidationErrorFlagsEmail(t *testing.T) {
	dispatcher := new(MockDispatcher)
	router := testRouter(dispatcher)

	w, resp := doJSON(t, router, http.MethodPost, "/api/quote", map[string]interface{}{
		"name":    "Ro",
		"email":   "bad-email",
		"phone":   "+919913647948",
		"service": "FX",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)

	found := false
	for _, fe := range resp.Errors {
		if fe.Field == "email" {
			found = true
		}
	}
	assert.True(t, found, "expected an error entry for field email, got %v", resp.Errors)
	dispatcher.AssertNumberOfCalls(t, "Send", 0)
}

func TestQuoteNonNumericAmountRejected(t *testing.T) {
	dispatcher := new(MockDispatcher)
	router := testRouter(dispatcher)

	w, resp := doJSON(t, router, http.MethodPost, "/api/quote", map[string]interface{}{
		"name":    "Asha Patel",
		"email":   "asha@example.com",
		"phone":   "+919913647948",
		"service": "FX",
		"amount":  "lots",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	found := false
	for _, fe := range resp.Errors {
		if fe.Field == "amount" {
			found = true
			assert.Equal(t, "Amount must be a number", fe.Message)
		}
	}
	assert.True(t, found)
	dispatcher.AssertNumberOfCalls(t, "Send", 0)
}

func TestServiceInquiryEndToEnd(t *testing.T) {
	dispatcher := new(MockDispatcher)
	dispatcher.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).Return(nil)
	router := testRouter(dispatcher)

	w, resp := doJSON(t, router, http.MethodPost, "/api/service-inquiry", map[string]interface{}{
		"name":    "Asha Patel",
		"email":   "asha@example.com",
		"phone":   "+919913647948",
		"service": "Foreign Currency Travel Card",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	dispatcher.AssertNumberOfCalls(t, "Send", 1)
}

func TestExchangeRatesEndpoint(t *testing.T) {
	router := testRouter(new(MockDispatcher))

	w, resp := doJSON(t, router, http.MethodGet, "/api/exchange-rates", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Disclaimer)

	var rates map[string]domain.ExchangeRate
	assert.NoError(t, json.Unmarshal(resp.Data, &rates))
	assert.Len(t, rates, 6)
	for code, r := range rates {
		assert.Less(t, r.Buy, r.Sell, "buy must be below sell for %s", code)
	}
}

func TestServicesEndpointIsIdempotent(t *testing.T) {
	router := testRouter(new(MockDispatcher))

	_, first := doJSON(t, router, http.MethodGet, "/api/services", nil)
	_, second := doJSON(t, router, http.MethodGet, "/api/services", nil)

	assert.True(t, first.Success)
	assert.JSONEq(t, string(first.Data), string(second.Data))

	var services []domain.Service
	assert.NoError(t, json.Unmarshal(first.Data, &services))
	assert.Len(t, services, 4)
}

func TestUnknownEndpointReturnsJSON404(t *testing.T) {
	router := testRouter(new(MockDispatcher))

	w, resp := doJSON(t, router, http.MethodGet, "/api/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Endpoint not found", resp.Message)
}

func TestRateLimitRejectsBeforeValidation(t *testing.T) {
	dispatcher := new(MockDispatcher)
	cfg := &config.Config{
		FrontendURL:            "http://localhost:8081",
		EmailUser:              "noreply@vallabhforex.com",
		CompanyEmail:           "vallabhforex@gmail.com",
		RateLimitWindowMinutes: 15,
		RateLimitMax:           2,
		StaticDir:              "./dist",
	}
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC: usecase.NewSubmissionUsecase(dispatcher, validation.New(), cfg),
		CatalogUC:    usecase.NewCatalogUsecase(),
		Config:       cfg,
	})

	// Distinct client IP so the counter is isolated from other tests
	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.RemoteAddr = "203.0.113.7:51000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)

	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var resp apiResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	dispatcher.AssertNumberOfCalls(t, "Send", 0)
}
