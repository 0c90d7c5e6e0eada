package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = appName

// metricsHooks records conversion and render events in a private Prometheus
// registry and forwards them to the logging hooks. The registry is written
// out in the text exposition format by writeTextfile, ready for the node
// exporter's textfile collector.
type metricsHooks struct {
	logHooks

	registry    *prometheus.Registry
	conversions prometheus.Counter
	convertTime prometheus.Histogram
	remainder   prometheus.Gauge
	renders     *prometheus.CounterVec
	renderBytes *prometheus.CounterVec
}

func newMetricsHooks(l *log.Logger) *metricsHooks {
	h := &metricsHooks{
		logHooks: newLogHooks(l),
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "conversions_total",
			Help:      "Number of times of day converted to lamp states.",
		}),
		convertTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "convert_duration_seconds",
			Help:      "Time spent converting a time of day.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 7),
		}),
		remainder: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "convert_remainder_seconds",
			Help:      "Part of the last converted time too small for any row.",
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "renders_total",
			Help:      "Number of renders by output format and result.",
		}, []string{"format", "result"}),
		renderBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "render_bytes_total",
			Help:      "Bytes produced by successful renders.",
		}, []string{"format"}),
	}
	h.registry.MustRegister(h.conversions, h.convertTime, h.remainder, h.renders, h.renderBytes)
	return h
}

func (h *metricsHooks) OnConvertComplete(ctx context.Context, rows int, remainder int64, d time.Duration) {
	h.logHooks.OnConvertComplete(ctx, rows, remainder, d)
	h.conversions.Inc()
	h.convertTime.Observe(d.Seconds())
	h.remainder.Set(time.Duration(remainder).Seconds())
}

func (h *metricsHooks) OnRenderComplete(ctx context.Context, format string, size int, d time.Duration, err error) {
	h.logHooks.OnRenderComplete(ctx, format, size, d, err)
	if err != nil {
		h.renders.WithLabelValues(format, "error").Inc()
		return
	}
	h.renders.WithLabelValues(format, "ok").Inc()
	h.renderBytes.WithLabelValues(format).Add(float64(size))
}

// writeTextfile writes the collected metrics to path atomically.
func (h *metricsHooks) writeTextfile(path string) error {
	return prometheus.WriteToTextfile(path, h.registry)
}
