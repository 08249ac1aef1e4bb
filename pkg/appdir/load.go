// SPDX-License-Identifier: MPL-2.0

package appdir

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/axlekit/axle/pkg/diag"
)

// Load reads the application's config file from ConfigDir(app) into the
// struct pointed to by into, then overlays environment variables prefixed
// with the uppercased app name (dots and dashes become underscores).
//
// The file is named "config" with any extension viper understands (yaml,
// toml, json, ...). A missing file is not an error; the returned path is
// then empty and into keeps its zero or pre-set values.
func Load(app string, into any) (string, error) {
	dir, err := ConfigDir(app)
	if err != nil {
		return "", err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix(app))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return "", diag.WrapPath(err, "read config", dir)
		}
	}

	if err := v.Unmarshal(into); err != nil {
		return "", diag.WrapPath(err, "decode config", v.ConfigFileUsed())
	}
	log.Debug("config loaded", "app", app, "file", v.ConfigFileUsed())
	return v.ConfigFileUsed(), nil
}

func envPrefix(app string) string {
	return strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(app))
}
