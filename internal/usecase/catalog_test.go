package usecase_test

import (
	"context"
	"testing"

	"go-forex-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestServicesCatalogIsStable(t *testing.T) {
	uc := usecase.NewCatalogUsecase()
	ctx := context.Background()

	first := uc.Services(ctx)
	second := uc.Services(ctx)

	assert.Len(t, first, 4)
	assert.Equal(t, first, second)
	assert.Equal(t, "Foreign Currency Buy & Sell", first[0].Title)
}

func TestExchangeRatesShape(t *testing.T) {
	uc := usecase.NewCatalogUsecase()
	ctx := context.Background()

	rates := uc.ExchangeRates(ctx)

	for _, code := range []string{"USD", "EUR", "GBP", "AED", "SGD", "AUD"} {
		r, ok := rates[code]
		assert.True(t, ok, "missing rate for %s", code)
		assert.Less(t, r.Buy, r.Sell, "buy must be below sell for %s", code)
		assert.False(t, r.LastUpdated.IsZero())
	}
	assert.Len(t, rates, 6)
}

func TestExchangeRatesTimestampNeverGoesBackward(t *testing.T) {
	uc := usecase.NewCatalogUsecase()
	ctx := context.Background()

	first := uc.ExchangeRates(ctx)["USD"].LastUpdated
	second := uc.ExchangeRates(ctx)["USD"].LastUpdated

	assert.False(t, second.Before(first))
}
