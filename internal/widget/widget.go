// Package widget implements the converter's presentation state machine:
// idle -> loading -> ready | error, plus the form inputs it converts.
package widget

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Lutefd/currency-widget/internal/converter"
	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/Lutefd/currency-widget/internal/provider"
)

const (
	DefaultSource = model.USD
	DefaultTarget = model.PKR
	InitialResult = "0.00"

	// FetchErrorMessage is what the widget displays when the rate fetch fails.
	FetchErrorMessage = "Error fetching exchange rates."
)

type Widget struct {
	mu        sync.Mutex
	id        string
	provider  provider.RateProvider
	state     model.WidgetState
	rates     model.ExchangeRateTable
	amount    *float64
	source    model.Currency
	target    model.Currency
	result    string
	errMsg    string
	createdAt time.Time
}

func New(id string, rateProvider provider.RateProvider) *Widget {
	return &Widget{
		id:        id,
		provider:  rateProvider,
		state:     model.WidgetStateIdle,
		source:    DefaultSource,
		target:    DefaultTarget,
		result:    InitialResult,
		createdAt: time.Now().UTC(),
	}
}

func Restore(snapshot model.WidgetSnapshot, rateProvider provider.RateProvider) *Widget {
	return &Widget{
		id:        snapshot.ID,
		provider:  rateProvider,
		state:     snapshot.State,
		rates:     snapshot.Rates,
		amount:    copyAmount(snapshot.Amount),
		source:    snapshot.Source,
		target:    snapshot.Target,
		result:    snapshot.Result,
		errMsg:    snapshot.Error,
		createdAt: snapshot.CreatedAt,
	}
}

// Mount performs the widget's single rate fetch. A failed fetch moves the
// widget to the error state; the error is returned for logging only.
func (w *Widget) Mount(ctx context.Context) error {
	if err := w.Start(); err != nil {
		return err
	}
	if w.provider == nil {
		err := fmt.Errorf("%w: no rate provider configured", model.ErrRateFetch)
		w.Complete(nil, err)
		return err
	}
	rates, err := w.provider.FetchRates(ctx, model.BaseCurrency)
	w.Complete(rates, err)
	return err
}

// Start moves an idle widget to loading. It succeeds only once.
func (w *Widget) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != model.WidgetStateIdle {
		return model.ErrAlreadyMounted
	}
	w.state = model.WidgetStateLoading
	w.errMsg = ""
	return nil
}

// Complete applies the outcome of the rate fetch to a loading widget.
func (w *Widget) Complete(rates model.ExchangeRateTable, fetchErr error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != model.WidgetStateLoading {
		return
	}
	if fetchErr != nil {
		w.state = model.WidgetStateError
		w.errMsg = FetchErrorMessage
		return
	}
	w.rates = rates
	w.state = model.WidgetStateReady
}

// SetAmount stores the user's amount. Nil, NaN, infinite or negative values
// leave the amount absent.
func (w *Widget) SetAmount(amount *float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if amount == nil || math.IsNaN(*amount) || math.IsInf(*amount, 0) || *amount < 0 {
		w.amount = nil
		return
	}
	w.amount = copyAmount(amount)
}

func (w *Widget) SetSource(c model.Currency) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", model.ErrUnsupportedCurrency, c)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.source = c
	return nil
}

func (w *Widget) SetTarget(c model.Currency) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", model.ErrUnsupportedCurrency, c)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.target = c
	return nil
}

// Convert recomputes the displayed result from the current inputs.
// Without an amount or rates it does nothing and keeps the previous result.
func (w *Widget) Convert() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.convertLocked()
}

// Swap exchanges source and target and recomputes with the new pair. The
// pair stays swapped even when the recompute fails.
func (w *Widget) Swap() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.source, w.target = w.target, w.source
	err := w.convertLocked()
	if errors.Is(err, model.ErrConvertDisabled) {
		return nil
	}
	return err
}

func (w *Widget) convertLocked() error {
	if w.state != model.WidgetStateReady {
		return model.ErrConvertDisabled
	}
	if w.amount == nil || *w.amount == 0 || len(w.rates) == 0 {
		return nil
	}
	result, err := converter.Convert(w.rates, w.source, w.target, *w.amount)
	if err != nil {
		return err
	}
	w.result = result
	return nil
}

func (w *Widget) ID() string {
	return w.id
}

func (w *Widget) State() model.WidgetState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Widget) ConvertEnabled() bool {
	return w.State() == model.WidgetStateReady
}

func (w *Widget) Result() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result
}

func (w *Widget) Error() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}

func (w *Widget) Pair() (model.Currency, model.Currency) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.source, w.target
}

func (w *Widget) Amount() *float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return copyAmount(w.amount)
}

func (w *Widget) Snapshot() model.WidgetSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return model.WidgetSnapshot{
		ID:        w.id,
		State:     w.state,
		Rates:     w.rates,
		Amount:    copyAmount(w.amount),
		Source:    w.source,
		Target:    w.target,
		Result:    w.result,
		Error:     w.errMsg,
		CreatedAt: w.createdAt,
	}
}

func copyAmount(amount *float64) *float64 {
	if amount == nil {
		return nil
	}
	v := *amount
	return &v
}
