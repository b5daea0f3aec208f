/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package nop

import "github.com/gorundebug/dynarray/telemetry/metrics"

type Metrics struct{}

type instrument struct{}

func (instrument) Inc()            {}
func (instrument) Set(float64)     {}
func (instrument) Observe(float64) {}

func (Metrics) Counter(metrics.CounterOpts) metrics.Counter {
	return instrument{}
}

func (Metrics) Gauge(metrics.GaugeOpts) metrics.Gauge {
	return instrument{}
}

func (Metrics) Histogram(metrics.HistogramOpts) metrics.Histogram {
	return instrument{}
}
