/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package metrics

type Counter interface {
	Inc()
}

type Gauge interface {
	Set(float64)
}

type Histogram interface {
	Observe(float64)
}

type Labels map[string]string

type Opts struct {
	Namespace   string
	Subsystem   string
	Name        string
	Help        string
	ConstLabels Labels
}

type CounterOpts struct {
	Opts
}

type GaugeOpts struct {
	Opts
}

type HistogramOpts struct {
	Opts
	Buckets []float64
}

type Metrics interface {
	Counter(opts CounterOpts) Counter
	Gauge(opts GaugeOpts) Gauge
	Histogram(opts HistogramOpts) Histogram
}
