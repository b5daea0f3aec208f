/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package config

import (
	"fmt"
	log "github.com/sirupsen/logrus"
)

// MaxGrowthFactor bounds collection.growthFactor.
const MaxGrowthFactor = 16.0

const (
	MetricsEngineNone       = "none"
	MetricsEnginePrometheus = "prometheus"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

type ConfigProperties interface {
	GetProperty(name string) interface{}
}

type CollectionConfig struct {
	InitialCapacity int                    `yaml:"initialCapacity"`
	GrowthFactor    float64                `yaml:"growthFactor"`
	Properties      map[string]interface{} `mapstructure:",remain"`
}

func (s *CollectionConfig) GetProperty(name string) interface{} {
	return s.Properties[name]
}

type LogConfig struct {
	Level      string                 `yaml:"level"`
	Format     string                 `yaml:"format"`
	Properties map[string]interface{} `mapstructure:",remain"`
}

func (s *LogConfig) GetProperty(name string) interface{} {
	return s.Properties[name]
}

type MetricsConfig struct {
	Engine     string                 `yaml:"engine"`
	Namespace  string                 `yaml:"namespace"`
	Name       string                 `yaml:"name"`
	Properties map[string]interface{} `mapstructure:",remain"`
}

func (s *MetricsConfig) GetProperty(name string) interface{} {
	return s.Properties[name]
}

type Config struct {
	Collection CollectionConfig `yaml:"collection"`
	Log        LogConfig        `yaml:"log"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

func GetConfigProperty[T any](config ConfigProperties, name string) T {
	value := config.GetProperty(name)
	if value != nil {
		if v, ok := value.(T); ok {
			return v
		}
	}
	var t T
	return t
}

func (cfg *Config) Validate() error {
	if cfg.Collection.InitialCapacity < 0 {
		return fmt.Errorf("collection.initialCapacity must not be negative, got %d", cfg.Collection.InitialCapacity)
	}
	if !(cfg.Collection.GrowthFactor > 1) || cfg.Collection.GrowthFactor > MaxGrowthFactor {
		return fmt.Errorf("collection.growthFactor must be in (1, %v], got %v", MaxGrowthFactor, cfg.Collection.GrowthFactor)
	}
	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch cfg.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unsupported log format: %q", cfg.Log.Format)
	}
	switch cfg.Metrics.Engine {
	case MetricsEngineNone, MetricsEnginePrometheus:
	default:
		return fmt.Errorf("unsupported metrics engine: %q", cfg.Metrics.Engine)
	}
	return nil
}
