package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess     = "success"
	OutcomeError       = "error"
	OutcomeNoop        = "noop"
	OutcomeDisabled    = "disabled"
	OutcomeMissingRate = "missing_rate"
)

// WidgetMetrics covers the rate fetch and conversions of hosted widgets.
type WidgetMetrics struct {
	RateFetchTotal    *prometheus.CounterVec
	RateFetchDuration prometheus.Histogram
	ConversionsTotal  *prometheus.CounterVec
	WidgetsCreated    prometheus.Counter
	WidgetsClosed     prometheus.Counter
}

func NewWidgetMetrics(reg prometheus.Registerer) *WidgetMetrics {
	factory := promauto.With(reg)
	return &WidgetMetrics{
		RateFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "widget_rate_fetch_total",
				Help: "Exchange rate fetches by outcome",
			},
			[]string{"outcome"},
		),
		RateFetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "widget_rate_fetch_duration_seconds",
				Help:    "Duration of exchange rate fetches",
				Buckets: prometheus.DefBuckets,
			},
		),
		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "widget_conversions_total",
				Help: "Conversion requests by outcome",
			},
			[]string{"outcome"},
		),
		WidgetsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "widget_sessions_created_total",
				Help: "Widget sessions created",
			},
		),
		WidgetsClosed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "widget_sessions_closed_total",
				Help: "Widget sessions closed explicitly",
			},
		),
	}
}
