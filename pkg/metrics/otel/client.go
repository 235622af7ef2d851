// Package otel implements the metrics client on top of the OpenTelemetry
// metric API. Instruments are created lazily per key against the global
// meter provider, so the client works unchanged whether or not an exporter
// has been installed.
package otel

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/avkit/extronctl/pkg/metrics"
)

const durationKeySuffix = ".duration"

type MetricsClient struct {
	meter metric.Meter

	mu         sync.Mutex
	counters   map[string]metric.Int64Counter
	histograms map[string]metric.Float64Histogram
}

func NewMetricsClient(scope string) *MetricsClient {
	return &MetricsClient{
		meter:      otel.GetMeterProvider().Meter(scope),
		counters:   make(map[string]metric.Int64Counter),
		histograms: make(map[string]metric.Float64Histogram),
	}
}

// Inc records value under key. Keys ending in ".duration" are treated as
// second-valued histograms, everything else as a counter.
func (c *MetricsClient) Inc(ctx context.Context, key string, value any, attributes ...attribute.KeyValue) {
	if strings.HasSuffix(key, durationKeySuffix) {
		histogram, err := c.histogramFor(key)
		if err != nil {
			return
		}

		histogram.Record(ctx, toFloat64(value), metric.WithAttributes(attributes...))

		return
	}

	counter, err := c.counterFor(key)
	if err != nil {
		return
	}

	counter.Add(ctx, toInt64(value), metric.WithAttributes(attributes...))
}

func (c *MetricsClient) Handler() http.Handler {
	return http.NotFoundHandler()
}

func (c *MetricsClient) Shutdown(context.Context) error {
	return nil
}

func (c *MetricsClient) counterFor(key string) (metric.Int64Counter, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if counter, ok := c.counters[key]; ok {
		return counter, nil
	}

	counter, err := metrics.RegisterInt64Counter(c.meter, metrics.Descriptor{
		Description: key,
		Unit:        "1",
	}, key)
	if err != nil {
		return nil, err
	}

	c.counters[key] = counter

	return counter, nil
}

func (c *MetricsClient) histogramFor(key string) (metric.Float64Histogram, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if histogram, ok := c.histograms[key]; ok {
		return histogram, nil
	}

	histogram, err := metrics.RegisterFloat64Histogram(c.meter, metrics.Descriptor{
		Description: key,
		Unit:        "s",
	}, key)
	if err != nil {
		return nil, err
	}

	c.histograms[key] = histogram

	return histogram, nil
}

func toInt64(value any) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case uint:
		return int64(v)
	default:
		return 1
	}
}

func toFloat64(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}
