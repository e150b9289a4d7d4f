package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Lutefd/currency-widget/internal/logger"
	"github.com/Lutefd/currency-widget/internal/metrics"
	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/Lutefd/currency-widget/internal/provider"
	"github.com/Lutefd/currency-widget/internal/session"
	"github.com/Lutefd/currency-widget/internal/widget"
	"github.com/google/uuid"
)

// WidgetService hosts widget sessions. Every user action is a
// load-apply-save against the store, serialised within the process.
type WidgetService struct {
	store    session.Store
	provider provider.RateProvider
	metrics  *metrics.WidgetMetrics
	ttl      time.Duration
	newID    func() string

	mu       sync.Mutex
	inflight sync.WaitGroup
	baseCtx  context.Context
}

func NewWidgetService(baseCtx context.Context, store session.Store, rateProvider provider.RateProvider, m *metrics.WidgetMetrics, ttl time.Duration) *WidgetService {
	return &WidgetService{
		store:    store,
		provider: rateProvider,
		metrics:  m,
		ttl:      ttl,
		newID:    func() string { return uuid.New().String() },
		baseCtx:  baseCtx,
	}
}

// Create mounts a new widget. The returned snapshot is in the loading state;
// the rate fetch completes in the background.
func (s *WidgetService) Create(ctx context.Context) (model.WidgetSnapshot, error) {
	w := widget.New(s.newID(), s.provider)
	if err := w.Start(); err != nil {
		return model.WidgetSnapshot{}, err
	}
	snapshot := w.Snapshot()

	s.mu.Lock()
	err := s.store.Save(ctx, snapshot, s.ttl)
	s.mu.Unlock()
	if err != nil {
		return model.WidgetSnapshot{}, fmt.Errorf("failed to save widget session: %w", err)
	}

	s.metrics.WidgetsCreated.Inc()
	s.inflight.Add(1)
	go s.loadRates(snapshot.ID)

	return snapshot, nil
}

func (s *WidgetService) loadRates(id string) {
	defer s.inflight.Done()

	start := time.Now()
	rates, fetchErr := s.provider.FetchRates(s.baseCtx, model.BaseCurrency)
	s.metrics.RateFetchDuration.Observe(time.Since(start).Seconds())
	if fetchErr != nil {
		s.metrics.RateFetchTotal.WithLabelValues(metrics.OutcomeError).Inc()
		logger.Errorw("failed to fetch exchange rates", "widget_id", id, "error", fetchErr)
	} else {
		s.metrics.RateFetchTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
		logger.Infow("exchange rates loaded", "widget_id", id, "rates", len(rates))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := context.WithoutCancel(s.baseCtx)
	snapshot, err := s.store.Get(ctx, id)
	if err != nil {
		logger.Infow("widget closed before rates arrived", "widget_id", id, "error", err)
		return
	}
	w := widget.Restore(*snapshot, s.provider)
	w.Complete(rates, fetchErr)
	if err := s.store.Save(ctx, w.Snapshot(), s.ttl); err != nil {
		logger.Errorw("failed to save widget session", "widget_id", id, "error", err)
	}
}

// Wait blocks until every in-flight rate fetch has been applied.
func (s *WidgetService) Wait() {
	s.inflight.Wait()
}

func (s *WidgetService) Get(ctx context.Context, id string) (model.WidgetSnapshot, error) {
	snapshot, err := s.store.Get(ctx, id)
	if err != nil {
		return model.WidgetSnapshot{}, err
	}
	return *snapshot, nil
}

func (s *WidgetService) SetAmount(ctx context.Context, id string, amount *float64) (model.WidgetSnapshot, error) {
	return s.apply(ctx, id, func(w *widget.Widget) error {
		w.SetAmount(amount)
		return nil
	})
}

func (s *WidgetService) SetSource(ctx context.Context, id string, currency model.Currency) (model.WidgetSnapshot, error) {
	return s.apply(ctx, id, func(w *widget.Widget) error {
		return w.SetSource(currency)
	})
}

func (s *WidgetService) SetTarget(ctx context.Context, id string, currency model.Currency) (model.WidgetSnapshot, error) {
	return s.apply(ctx, id, func(w *widget.Widget) error {
		return w.SetTarget(currency)
	})
}

// Swap always persists the relabelled pair. A missing rate for the new pair
// is returned alongside the saved snapshot.
func (s *WidgetService) Swap(ctx context.Context, id string) (model.WidgetSnapshot, error) {
	var convertErr error
	snapshot, err := s.apply(ctx, id, func(w *widget.Widget) error {
		convertErr = w.Swap()
		s.recordConversion(w, convertErr)
		if errors.Is(convertErr, model.ErrMissingRate) {
			return nil
		}
		return convertErr
	})
	if err != nil {
		return snapshot, err
	}
	return snapshot, convertErr
}

func (s *WidgetService) Convert(ctx context.Context, id string) (model.WidgetSnapshot, error) {
	return s.apply(ctx, id, func(w *widget.Widget) error {
		err := w.Convert()
		s.recordConversion(w, err)
		return err
	})
}

func (s *WidgetService) Close(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to close widget session: %w", err)
	}
	s.metrics.WidgetsClosed.Inc()
	return nil
}

// apply runs fn on the stored widget and saves it only when fn succeeds.
func (s *WidgetService) apply(ctx context.Context, id string, fn func(w *widget.Widget) error) (model.WidgetSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.store.Get(ctx, id)
	if err != nil {
		return model.WidgetSnapshot{}, err
	}

	w := widget.Restore(*snapshot, s.provider)
	if err := fn(w); err != nil {
		return *snapshot, err
	}

	updated := w.Snapshot()
	if err := s.store.Save(ctx, updated, s.ttl); err != nil {
		return *snapshot, fmt.Errorf("failed to save widget session: %w", err)
	}
	return updated, nil
}

func (s *WidgetService) recordConversion(w *widget.Widget, err error) {
	outcome := metrics.OutcomeSuccess
	switch {
	case errors.Is(err, model.ErrConvertDisabled):
		outcome = metrics.OutcomeDisabled
	case errors.Is(err, model.ErrMissingRate):
		outcome = metrics.OutcomeMissingRate
	case err != nil:
		outcome = metrics.OutcomeError
	case !w.ConvertEnabled():
		outcome = metrics.OutcomeDisabled
	case w.Amount() == nil || *w.Amount() == 0:
		outcome = metrics.OutcomeNoop
	}
	s.metrics.ConversionsTotal.WithLabelValues(outcome).Inc()
}
