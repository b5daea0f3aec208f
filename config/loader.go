/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package config

import (
	"bytes"
	"fmt"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const EnvPrefix = "DYNARRAY"

var defaults = map[string]interface{}{
	"collection.initialCapacity": 16,
	"collection.growthFactor":    2.0,
	"log.level":                  "info",
	"log.format":                 LogFormatText,
	"metrics.engine":             MetricsEngineNone,
	"metrics.namespace":          "dynarray",
	"metrics.name":               "collection",
}

func getPath(argPath string) (string, error) {
	if filepath.IsAbs(argPath) {
		return argPath, nil
	}
	return filepath.Abs(argPath)
}

// replacePlaceholders substitutes string values of the form "$name" with
// the value of name from values.
func replacePlaceholders(config interface{}, values map[string]interface{}) interface{} {
	switch val := config.(type) {
	case string:
		if strings.HasPrefix(val, "$") {
			placeholder := val[1:]
			if val, ok := values[placeholder]; ok {
				return val
			}
		}
		return val
	case map[interface{}]interface{}:
		for key, value := range val {
			val[key] = replacePlaceholders(value, values)
		}
		return val
	case map[string]interface{}:
		for key, value := range val {
			val[key] = replacePlaceholders(value, values)
		}
		return val
	case []interface{}:
		for i, value := range val {
			val[i] = replacePlaceholders(value, values)
		}
		return val
	default:
		return val
	}
}

func readYaml(path string) (map[string]interface{}, error) {
	filePath, err := getPath(path)
	if err != nil {
		return nil, fmt.Errorf("path error: %w", err)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filePath, err)
	}
	var content map[string]interface{}
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("error unmarshalling %s: %w", filePath, err)
	}
	return content, nil
}

func getConfigData(configPath string, valuesPath string) (io.Reader, error) {
	config, err := readYaml(configPath)
	if err != nil {
		return nil, err
	}
	values := map[string]interface{}{}
	if valuesPath != "" {
		if values, err = readYaml(valuesPath); err != nil {
			return nil, err
		}
	}
	replacePlaceholders(config, values)
	if config == nil {
		config = map[string]interface{}{}
	}
	output, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("error marshaling config to YAML: %w", err)
	}
	return bytes.NewReader(output), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

// Default returns the configuration used when no config file is given.
// Environment overrides still apply.
func Default() (*Config, error) {
	return decode(newViper())
}

// Load reads the YAML config at configPath, substitutes "$name" placeholders
// from the YAML values file at valuesPath (optional) and decodes the result.
func Load(configPath string, valuesPath string) (*Config, error) {
	data, err := getConfigData(configPath, valuesPath)
	if err != nil {
		return nil, err
	}
	v := newViper()
	if err := v.ReadConfig(data); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
