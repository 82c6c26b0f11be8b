package forexapi

import "time"

// ContactForm is the payload for SubmitContact.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// QuoteForm is the payload for RequestQuote. Amount and Currency may be nil.
type QuoteForm struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Service        string   `json:"service"`
	Amount         *float64 `json:"amount,omitempty"`
	Currency       *string  `json:"currency,omitempty"`
	AdditionalInfo string   `json:"additionalInfo,omitempty"`
}

// InquiryForm is the payload for SubmitServiceInquiry.
type InquiryForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
}

// Service is one catalog entry returned by Services.
type Service struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
}

// Rate is one indicative exchange-rate entry.
type Rate struct {
	Buy         float64   `json:"buy"`
	Sell        float64   `json:"sell"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// HealthStatus reports API liveness.
type HealthStatus struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
