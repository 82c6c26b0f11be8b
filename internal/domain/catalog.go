package domain

import (
	"context"
	"time"
)

// Service is one entry of the fixed service catalog shown on the site.
type Service struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
}

// ExchangeRate holds indicative buy/sell rates against INR. LastUpdated is
// stamped at read time so the table always looks live; it is placeholder
// data, not a real rate feed.
type ExchangeRate struct {
	Buy         float64   `json:"buy"`
	Sell        float64   `json:"sell"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// RateDisclaimer accompanies every exchange-rate response.
const RateDisclaimer = "Rates are indicative and subject to change. Please contact us for exact rates."

// CatalogUsecase serves the static content: the service catalog and the
// indicative exchange-rate table.
type CatalogUsecase interface {
	Services(ctx context.Context) []Service
	ExchangeRates(ctx context.Context) map[string]ExchangeRate
}
