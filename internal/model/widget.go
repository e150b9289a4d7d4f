package model

import "time"

type WidgetState string

const (
	WidgetStateIdle    WidgetState = "idle"
	WidgetStateLoading WidgetState = "loading"
	WidgetStateReady   WidgetState = "ready"
	WidgetStateError   WidgetState = "error"
)

// WidgetSnapshot is the stored form of a widget session.
type WidgetSnapshot struct {
	ID        string            `json:"id"`
	State     WidgetState       `json:"state"`
	Rates     ExchangeRateTable `json:"rates,omitempty"`
	Amount    *float64          `json:"amount"`
	Source    Currency          `json:"source"`
	Target    Currency          `json:"target"`
	Result    string            `json:"result"`
	Error     string            `json:"error,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
