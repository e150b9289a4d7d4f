package service

import (
	"context"

	"github.com/Lutefd/currency-widget/internal/model"
)

type WidgetServiceInterface interface {
	Create(ctx context.Context) (model.WidgetSnapshot, error)
	Get(ctx context.Context, id string) (model.WidgetSnapshot, error)
	SetAmount(ctx context.Context, id string, amount *float64) (model.WidgetSnapshot, error)
	SetSource(ctx context.Context, id string, currency model.Currency) (model.WidgetSnapshot, error)
	SetTarget(ctx context.Context, id string, currency model.Currency) (model.WidgetSnapshot, error)
	Swap(ctx context.Context, id string) (model.WidgetSnapshot, error)
	Convert(ctx context.Context, id string) (model.WidgetSnapshot, error)
	Close(ctx context.Context, id string) error
}
