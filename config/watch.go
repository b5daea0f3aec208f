/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package config

import (
	"context"
	"fmt"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"path/filepath"
)

// Watch reloads the configuration whenever the config or values file is
// written and passes every successfully loaded configuration to onChange.
// Watching stops when ctx is done.
func Watch(ctx context.Context, configPath string, valuesPath string, onChange func(*Config)) error {
	files := make(map[string]struct{})
	dirs := make(map[string]struct{})
	for _, path := range []string{configPath, valuesPath} {
		if path == "" {
			continue
		}
		filePath, err := getPath(path)
		if err != nil {
			return fmt.Errorf("path error: %w", err)
		}
		files[filepath.Clean(filePath)] = struct{}{}
		dirs[filepath.Dir(filePath)] = struct{}{}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating config watcher: %w", err)
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return fmt.Errorf("error watching %s: %w", dir, err)
		}
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if _, watched := files[filepath.Clean(event.Name)]; !watched {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(configPath, valuesPath)
				if err != nil {
					log.Errorf("error config update: %s", err)
					continue
				}
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Errorf("config watcher error: %s", err)
			}
		}
	}()
	return nil
}
