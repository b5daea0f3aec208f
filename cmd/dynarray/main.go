/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/gorundebug/dynarray/collection"
	"github.com/gorundebug/dynarray/config"
	"github.com/gorundebug/dynarray/logging"
	"github.com/gorundebug/dynarray/telemetry"
	promexport "github.com/gorundebug/dynarray/telemetry/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"io"
	"os"
	"strings"
	"sync"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func loadConfig(configPath string, valuesPath string) (*config.Config, error) {
	if configPath == "" {
		return config.Default()
	}
	return config.Load(configPath, valuesPath)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	flags := pflag.NewFlagSet("dynarray", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.SetInterspersed(false)
	configPath := flags.StringP("config", "c", "", "config path")
	valuesPath := flags.String("values", "", "config values path")
	logLevel := flags.String("log-level", "", "log level, overrides log.level from the config")
	items := flags.StringSlice("items", nil, "initial elements")
	interactive := flags.BoolP("interactive", "i", false, "read one script per line from stdin")
	watch := flags.Bool("watch", false, "reload the config on change (interactive mode only)")
	dumpMetrics := flags.Bool("metrics", false, "write collected metrics to stderr on exit")
	flags.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: dynarray [flags] [command [args]]...\n"+
			"Commands: add V, addrange V1,V2,..., insert I V, remove I, set I V, get I,\n"+
			"          exchange I J, clear, count, empty, capacity, print\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := loadConfig(*configPath, *valuesPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	logger, err := logging.MakeLogger(&cfg.Log, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitUsage
	}

	registry := prometheus.NewRegistry()
	m, err := telemetry.CreateMetrics(cfg.Metrics.Engine, cfg.Metrics.Namespace, registry)
	if err != nil {
		logger.Error(err)
		return exitUsage
	}
	if *dumpMetrics {
		defer func() {
			if err := promexport.WriteText(stderr, registry); err != nil {
				logger.Errorf("error writing metrics: %s", err)
			}
		}()
	}

	settings := collection.SettingsFromConfig(&cfg.Collection, logger, telemetry.MakeCollectionMetrics(m, cfg.Metrics.Name))
	c := collection.MakeCollectionWithSettings(settings, *items...)

	if !*interactive {
		err := runScript(c, flags.Args(), stdout)
		_, _ = fmt.Fprintln(stdout, c)
		if err != nil {
			logger.Error(err)
			return exitError
		}
		return exitOK
	}

	var lock sync.Mutex
	if *watch && *configPath != "" {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		err := config.Watch(ctx, *configPath, *valuesPath, func(cfg *config.Config) {
			lock.Lock()
			defer lock.Unlock()
			applyConfig(c, logger, cfg)
		})
		if err != nil {
			logger.Error(err)
			return exitError
		}
	}

	status := exitOK
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		script := strings.Fields(scanner.Text())
		if len(script) == 0 {
			continue
		}
		func() {
			lock.Lock()
			defer lock.Unlock()
			if err := runScript(c, script, stdout); err != nil {
				logger.Error(err)
				status = exitError
			}
			_, _ = fmt.Fprintln(stdout, c)
		}()
	}
	if err := scanner.Err(); err != nil {
		logger.Error(err)
		return exitError
	}
	return status
}

func applyConfig(c *collection.Collection[string], logger *logrus.Logger, cfg *config.Config) {
	c.SetGrowthPolicy(collection.GrowthPolicy{
		InitialCapacity: cfg.Collection.InitialCapacity,
		Factor:          cfg.Collection.GrowthFactor,
	})
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	logger.WithFields(logrus.Fields{
		"growthFactor": cfg.Collection.GrowthFactor,
		"logLevel":     cfg.Log.Level,
	}).Info("config reloaded")
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
