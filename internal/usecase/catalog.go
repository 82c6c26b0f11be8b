package usecase

import (
	"context"
	"time"

	"go-forex-backend/internal/domain"
)

// serviceCatalog is fixed at process start and never mutated.
var serviceCatalog = []domain.Service{
	{
		ID:          1,
		Title:       "Foreign Currency Buy & Sell",
		Description: "Best exchange rates for all major currencies with quick and secure transactions.",
		Features:    []string{"Live Exchange Rates", "Multiple Currencies", "Instant Processing", "RBI Authorized"},
		Icon:        "DollarSign",
	},
	{
		ID:          2,
		Title:       "Foreign Currency Travel Card",
		Description: "Convenient prepaid travel cards for international trips with competitive rates.",
		Features:    []string{"Multi-Currency Card", "Secure Transactions", "Global Acceptance", "Easy Reloading"},
		Icon:        "Coins",
	},
	{
		ID:          3,
		Title:       "Foreign Currency Remittance",
		Description: "Fast and secure money transfer services to international destinations.",
		Features:    []string{"Quick Transfers", "Competitive Rates", "Secure Process", "Global Network"},
		Icon:        "TrendingUp",
	},
	{
		ID:          4,
		Title:       "Travel Insurance",
		Description: "Comprehensive travel insurance coverage for international and domestic trips.",
		Features:    []string{"Medical Coverage", "Trip Cancellation", "Baggage Protection", "24/7 Support"},
		Icon:        "Shield",
	},
}

// baseRates holds the placeholder buy/sell quotes against INR.
var baseRates = map[string]struct{ buy, sell float64 }{
	"USD": {83.25, 83.45},
	"EUR": {90.15, 90.35},
	"GBP": {105.80, 106.00},
	"AED": {22.65, 22.75},
	"SGD": {61.20, 61.40},
	"AUD": {54.30, 54.50},
}

type catalogUsecase struct{}

// NewCatalogUsecase creates the static content provider.
func NewCatalogUsecase() domain.CatalogUsecase {
	return &catalogUsecase{}
}

func (uc *catalogUsecase) Services(ctx context.Context) []domain.Service {
	return serviceCatalog
}

// ExchangeRates stamps every entry with the current time so the table always
// looks freshly updated.
func (uc *catalogUsecase) ExchangeRates(ctx context.Context) map[string]domain.ExchangeRate {
	now := time.Now().UTC()
	rates := make(map[string]domain.ExchangeRate, len(baseRates))
	for code, r := range baseRates {
		rates[code] = domain.ExchangeRate{
			Buy:         r.buy,
			Sell:        r.sell,
			LastUpdated: now,
		}
	}
	return rates
}
