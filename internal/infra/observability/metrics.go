package observability

import (
	"context"
	"errors"
	"time"

	"github.com/boddenberg/boleto-barcode-go/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the encoder.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	encodeDuration *prometheus.HistogramVec
	encodesTotal   *prometheus.CounterVec
	encodeErrors   *prometheus.CounterVec
	batchSize      prometheus.Histogram
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		encodeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "boleto_encode_duration_seconds",
				Help:    "Duration of barcode encoding by bank.",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
			[]string{"bank"},
		),
		encodesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boleto_encodes_total",
				Help: "Total barcode encodings by bank and outcome.",
			},
			[]string{"bank", "status"},
		),
		encodeErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boleto_encode_errors_total",
				Help: "Total encoding failures by error kind.",
			},
			[]string{"kind"},
		),
		batchSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "boleto_batch_size",
				Help:    "Number of items per batch encoding request.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}
}

// RecordEncode records the duration and outcome of one encoding.
func (m *Metrics) RecordEncode(bank string, d time.Duration, err error) {
	m.encodeDuration.WithLabelValues(bank).Observe(d.Seconds())
	if err != nil {
		m.encodesTotal.WithLabelValues(bank, "error").Inc()
		m.encodeErrors.WithLabelValues(ErrorKind(err)).Inc()
		return
	}
	m.encodesTotal.WithLabelValues(bank, "success").Inc()
}

// ObserveBatchSize records the size of a batch request.
func (m *Metrics) ObserveBatchSize(n int) {
	m.batchSize.Observe(float64(n))
}

// ErrorKind classifies an error for the kind label.
func ErrorKind(err error) string {
	var (
		formatting *domain.ErrFormatting
		structural *domain.ErrStructural
		invalid    *domain.ErrInvalidInput
		validation *domain.ErrValidation
		notFound   *domain.ErrNotFound
	)
	switch {
	case errors.As(err, &formatting):
		return "formatting"
	case errors.As(err, &structural):
		return "structural"
	case errors.As(err, &invalid):
		return "invalid_input"
	case errors.As(err, &validation):
		return "validation"
	case errors.As(err, &notFound):
		return "not_found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "other"
	}
}

// Snapshot returns the encoder counters for GET /v1/metrics/encoder.
// Prometheus counters are cumulative, so the period is always all_time.
func (m *Metrics) Snapshot() *domain.EncoderMetrics {
	byStatus := sumByLabel(m.encodesTotal, "status")
	succeeded := byStatus["success"]
	failed := byStatus["error"]
	total := succeeded + failed

	rate := float64(0)
	if total > 0 {
		rate = succeeded / total
	}

	byKind := make(map[string]int64)
	for kind, v := range sumByLabel(m.encodeErrors, "kind") {
		byKind[kind] = int64(v)
	}

	return &domain.EncoderMetrics{
		TotalEncodes: int64(total),
		Succeeded:    int64(succeeded),
		Failed:       int64(failed),
		SuccessRate:  rate,
		ErrorsByKind: byKind,
		Period:       "all_time",
	}
}

// sumByLabel adds up every child counter of cv grouped by one label.
func sumByLabel(cv *prometheus.CounterVec, label string) map[string]float64 {
	ch := make(chan prometheus.Metric)
	go func() {
		cv.Collect(ch)
		close(ch)
	}()

	out := make(map[string]float64)
	for metric := range ch {
		m := &dto.Metric{}
		if err := metric.Write(m); err != nil || m.Counter == nil {
			continue
		}
		for _, lp := range m.GetLabel() {
			if lp.GetName() == label {
				out[lp.GetValue()] += m.GetCounter().GetValue()
			}
		}
	}
	return out
}
