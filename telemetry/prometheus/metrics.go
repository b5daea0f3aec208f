/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package prometheus

import (
	"github.com/gorundebug/dynarray/telemetry/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
	"io"
)

type Metrics struct {
	Namespace string
	factory   promauto.Factory
}

// MakeMetrics registers every created metric with registerer. A nil
// registerer means prometheus.DefaultRegisterer.
func MakeMetrics(namespace string, registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &Metrics{
		Namespace: namespace,
		factory:   promauto.With(registerer),
	}
}

func labelsToPrometheusLabels(labels metrics.Labels) prometheus.Labels {
	prometheusLabels := prometheus.Labels{}
	for k, v := range labels {
		prometheusLabels[k] = v
	}
	return prometheusLabels
}

func (mf *Metrics) namespace(opts metrics.Opts) string {
	if opts.Namespace != "" {
		return opts.Namespace
	}
	return mf.Namespace
}

func (mf *Metrics) Counter(opts metrics.CounterOpts) metrics.Counter {
	return mf.factory.NewCounter(prometheus.CounterOpts{
		Namespace:   mf.namespace(opts.Opts),
		Subsystem:   opts.Subsystem,
		Name:        opts.Name,
		Help:        opts.Help,
		ConstLabels: labelsToPrometheusLabels(opts.ConstLabels),
	})
}

func (mf *Metrics) Gauge(opts metrics.GaugeOpts) metrics.Gauge {
	return mf.factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   mf.namespace(opts.Opts),
		Subsystem:   opts.Subsystem,
		Name:        opts.Name,
		Help:        opts.Help,
		ConstLabels: labelsToPrometheusLabels(opts.ConstLabels),
	})
}

func (mf *Metrics) Histogram(opts metrics.HistogramOpts) metrics.Histogram {
	return mf.factory.NewHistogram(prometheus.HistogramOpts{
		Namespace:   mf.namespace(opts.Opts),
		Subsystem:   opts.Subsystem,
		Name:        opts.Name,
		Help:        opts.Help,
		ConstLabels: labelsToPrometheusLabels(opts.ConstLabels),
		Buckets:     opts.Buckets,
	})
}

// WriteText writes every metric family gathered from g in the text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return err
		}
	}
	return nil
}
