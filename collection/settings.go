/*
 * Copyright (c) 2024 Sergey Alexeev
 * Email: sergeyalexeev@yahoo.com
 *
 *  Licensed under the MIT License. See the [LICENSE](https://opensource.org/licenses/MIT) file for details.
 */

package collection

import (
	"github.com/gorundebug/dynarray/config"
	log "github.com/sirupsen/logrus"
)

// SettingsFromConfig builds collection settings from the collection section
// of the configuration. Nil logger and observer fall back to the defaults.
func SettingsFromConfig(cfg *config.CollectionConfig, logger log.FieldLogger, observer Observer) Settings {
	settings := DefaultSettings()
	if cfg != nil {
		settings.Policy = GrowthPolicy{
			InitialCapacity: cfg.InitialCapacity,
			Factor:          cfg.GrowthFactor,
		}
	}
	if logger != nil {
		settings.Logger = logger
	}
	if observer != nil {
		settings.Observer = observer
	}
	return settings
}
