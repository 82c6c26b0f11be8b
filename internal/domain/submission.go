package domain

import (
	"context"
	"strings"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=50"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,intl_phone"`
	Service string `json:"service" validate:"required,max=100"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// Normalize trims surrounding whitespace and lowercases the email address.
// Must run before validation so length rules apply to the trimmed values.
func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Service = strings.TrimSpace(r.Service)
	r.Message = strings.TrimSpace(r.Message)
}

// QuoteRequest represents a quote request submission. Amount and Currency are
// optional; when absent they are simply left out of the notification.
type QuoteRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=50"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone" validate:"required,intl_phone"`
	Service        string   `json:"service" validate:"required,max=100"`
	Amount         *float64 `json:"amount,omitempty" validate:"omitempty"`
	Currency       *string  `json:"currency,omitempty" validate:"omitempty,min=1,max=10"`
	AdditionalInfo string   `json:"additionalInfo,omitempty"`
}

func (r *QuoteRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Service = strings.TrimSpace(r.Service)
	if r.Currency != nil {
		trimmed := strings.TrimSpace(*r.Currency)
		r.Currency = &trimmed
	}
	r.AdditionalInfo = strings.TrimSpace(r.AdditionalInfo)
}

// ServiceInquiryRequest represents a service inquiry submission
type ServiceInquiryRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=50"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,intl_phone"`
	Service string `json:"service" validate:"required,max=100"`
}

func (r *ServiceInquiryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Service = strings.TrimSpace(r.Service)
}

// SubmissionUsecase defines the form submission pipeline: validate the
// payload, compose the notification emails and hand them to the dispatcher.
// A submission is accepted whole or rejected whole; no email is sent for an
// invalid payload.
type SubmissionUsecase interface {
	// SendContactMessage sends the business notification and the submitter
	// confirmation, in that order.
	SendContactMessage(ctx context.Context, req *ContactRequest) error
	// SendQuoteRequest sends one notification to the business inbox.
	SendQuoteRequest(ctx context.Context, req *QuoteRequest) error
	// SendServiceInquiry sends one notification to the business inbox.
	SendServiceInquiry(ctx context.Context, req *ServiceInquiryRequest) error
}
