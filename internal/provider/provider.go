package provider

import (
	"context"

	"github.com/Lutefd/currency-widget/internal/model"
)

type RateProvider interface {
	FetchRates(ctx context.Context, base model.Currency) (model.ExchangeRateTable, error)
}
