package session

import (
	"context"
	"time"

	"github.com/Lutefd/currency-widget/internal/model"
)

// Store keeps widget sessions alive between requests. Entries expire after
// their TTL; Delete is the explicit unmount.
type Store interface {
	Get(ctx context.Context, id string) (*model.WidgetSnapshot, error)
	Save(ctx context.Context, snapshot model.WidgetSnapshot, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
	Close() error
}
