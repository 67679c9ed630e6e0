/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the operator's database connection settings from an
// extension-driven configuration file, the Go-idiomatic stand-in for the
// standard config loader this controller is built against.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Environment variable overriding the configuration file path.
const configFileEnv = "CONFIG_FILE"

// Default configuration path when CONFIG_FILE is unset.
const defaultConfigFile = "conf/application"

// Config holds the database connection settings.
type Config struct {
	// URL is the database connection string.
	URL string
	// Database is the logical database name.
	Database string
}

// Load reads the configuration file located via CONFIG_FILE (default
// conf/application), resolving its extension the way Viper does
// (.yaml/.yml/.json/.toml/...). Both url and database are required.
func Load() (Config, error) {
	path := filename()

	v := viper.New()
	v.SetConfigName(filepath.Base(path))
	v.AddConfigPath(filepath.Dir(path))

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration from %s: %w", path, err)
	}

	url := v.GetString("url")
	if url == "" {
		return Config{}, fmt.Errorf("configuration key %q is required", "url")
	}

	database := v.GetString("database")
	if database == "" {
		return Config{}, fmt.Errorf("configuration key %q is required", "database")
	}

	return Config{URL: url, Database: database}, nil
}

func filename() string {
	if v, ok := os.LookupEnv(configFileEnv); ok && v != "" {
		return v
	}
	return defaultConfigFile
}
