/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package telemetry

import "github.com/gorundebug/dynarray/telemetry/metrics"

// CollectionMetrics reports buffer growth and element counts of a single
// collection. It satisfies collection.Observer.
type CollectionMetrics struct {
	grows      metrics.Counter
	grownSlots metrics.Histogram
	capacity   metrics.Gauge
	count      metrics.Gauge
}

func MakeCollectionMetrics(m metrics.Metrics, name string) *CollectionMetrics {
	labels := metrics.Labels{"collection": name}
	return &CollectionMetrics{
		grows: m.Counter(metrics.CounterOpts{Opts: metrics.Opts{
			Name:        "collection_grows_total",
			Help:        "Number of buffer reallocations",
			ConstLabels: labels,
		}}),
		grownSlots: m.Histogram(metrics.HistogramOpts{
			Opts: metrics.Opts{
				Name:        "collection_grown_slots",
				Help:        "Slots added by a single reallocation",
				ConstLabels: labels,
			},
			Buckets: []float64{1, 16, 256, 4096, 65536, 1048576},
		}),
		capacity: m.Gauge(metrics.GaugeOpts{Opts: metrics.Opts{
			Name:        "collection_capacity",
			Help:        "Allocated slots",
			ConstLabels: labels,
		}}),
		count: m.Gauge(metrics.GaugeOpts{Opts: metrics.Opts{
			Name:        "collection_count",
			Help:        "Live elements",
			ConstLabels: labels,
		}}),
	}
}

func (m *CollectionMetrics) Grown(from int, to int) {
	m.grows.Inc()
	m.grownSlots.Observe(float64(to - from))
	m.capacity.Set(float64(to))
}

func (m *CollectionMetrics) Changed(count int, capacity int) {
	m.count.Set(float64(count))
	m.capacity.Set(float64(capacity))
}
