package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics covers the STK push lifecycle end to end.
type PaymentMetrics struct {
	PaymentsInitiatedTotal       prometheus.Counter
	PaymentsInitiatedAmountTotal prometheus.Counter
	PaymentsPendingCount         prometheus.Gauge

	PaymentsCompletedTotal       prometheus.Counter
	PaymentsCompletedAmountTotal prometheus.Counter

	PaymentsFailedTotal prometheus.CounterVec

	DuplicateCallbacksTotal prometheus.Counter

	StkPushDuration            prometheus.Histogram
	CallbackProcessingDuration prometheus.Histogram

	PaymentErrorsTotal prometheus.CounterVec
}

func NewPaymentMetrics() *PaymentMetrics {
	return &PaymentMetrics{
		PaymentsInitiatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payments_initiated_total",
				Help: "Total number of STK push payments initiated",
			},
		),

		PaymentsInitiatedAmountTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payments_initiated_amount_total",
				Help: "Total KES amount of initiated payments",
			},
		),

		PaymentsPendingCount: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "payments_pending_count",
				Help: "Current number of payments awaiting a gateway callback",
			},
		),

		PaymentsCompletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payments_completed_total",
				Help: "Total number of payments confirmed by the gateway",
			},
		),

		PaymentsCompletedAmountTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payments_completed_amount_total",
				Help: "Total KES amount of completed payments",
			},
		),

		PaymentsFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_failed_total",
				Help: "Total number of failed payments by gateway result code",
			},
			[]string{"result_code"},
		),

		DuplicateCallbacksTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payments_duplicate_callbacks_total",
				Help: "Callbacks received for transactions already in a terminal status",
			},
		),

		StkPushDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "stk_push_duration_seconds",
				Help:    "Round-trip time of the gateway OAuth plus STK push submit",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
			},
		),

		CallbackProcessingDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "callback_processing_duration_seconds",
				Help:    "Time to process a gateway result callback",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
			},
		),

		PaymentErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_errors_total",
				Help: "Total number of payment processing errors by stage",
			},
			[]string{"stage"},
		),
	}
}

func (m *PaymentMetrics) RecordPaymentInitiated(amount float64) {
	m.PaymentsInitiatedTotal.Inc()
	m.PaymentsInitiatedAmountTotal.Add(amount)
	m.PaymentsPendingCount.Inc()
}

func (m *PaymentMetrics) RecordPaymentCompleted(amount float64) {
	m.PaymentsCompletedTotal.Inc()
	m.PaymentsCompletedAmountTotal.Add(amount)
	m.PaymentsPendingCount.Dec()
}

func (m *PaymentMetrics) RecordPaymentFailed(resultCode string) {
	m.PaymentsFailedTotal.WithLabelValues(resultCode).Inc()
	m.PaymentsPendingCount.Dec()
}

func (m *PaymentMetrics) RecordDuplicateCallback() {
	m.DuplicateCallbacksTotal.Inc()
}

func (m *PaymentMetrics) RecordStkPushDuration(durationSeconds float64) {
	m.StkPushDuration.Observe(durationSeconds)
}

func (m *PaymentMetrics) RecordCallbackDuration(durationSeconds float64) {
	m.CallbackProcessingDuration.Observe(durationSeconds)
}

func (m *PaymentMetrics) RecordError(stage string) {
	m.PaymentErrorsTotal.WithLabelValues(stage).Inc()
}
