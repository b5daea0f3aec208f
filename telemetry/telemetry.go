/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package telemetry

import (
	"fmt"
	"github.com/gorundebug/dynarray/config"
	"github.com/gorundebug/dynarray/telemetry/metrics"
	"github.com/gorundebug/dynarray/telemetry/nop"
	"github.com/gorundebug/dynarray/telemetry/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"
)

func CreateMetrics(metricsEngine string, namespace string, registerer prom.Registerer) (metrics.Metrics, error) {
	switch metricsEngine {
	case config.MetricsEngineNone, "":
		return nop.Metrics{}, nil
	case config.MetricsEnginePrometheus:
		return prometheus.MakeMetrics(namespace, registerer), nil
	}
	return nil, fmt.Errorf("unsupported metrics engine: %q", metricsEngine)
}
