/*
 * Copyright (c) 2026 shenjunzheng@gmail.com
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config resolves the legacy GeoIP database path and other runtime
// settings through viper's layered configuration: explicit flag, then
// environment variable, then a YAML config file, then the built-in default.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	envFilePath = "IPCAP_FILE_PATH"

	defaultDirName    = "ipcap"
	defaultV4Database = "geo_ip_city_v4.dat"
	defaultV6Database = "geo_ip_city_v6.dat"
)

// Config holds the settings the CLI and server commands read at startup.
type Config struct {
	v *viper.Viper
}

// Load builds a Config from, in priority order, an explicit flag value (if
// non-empty), the IPCAP_FILE_PATH environment variable, a YAML file at
// $HOME/.ipcap/config.yaml, and finally the compiled-in default.
func Load(flagPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ipcap")
	v.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(home, ".ipcap"))
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if flagPath != "" {
		v.Set("file_path", flagPath)
	} else if envVal := os.Getenv(envFilePath); envVal != "" {
		v.Set("file_path", envVal)
	}

	return &Config{v: v}, nil
}

// DatabasePath returns the resolved database path for the given address
// family ("4" or "6"), falling back to the spec's default layout under the
// user's home directory when nothing more specific was configured.
func (c *Config) DatabasePath(family string) string {
	if explicit := c.v.GetString("file_path"); explicit != "" {
		return explicit
	}

	name := defaultV4Database
	if family == "6" {
		name = defaultV6Database
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(defaultDirName, name)
	}
	return filepath.Join(home, defaultDirName, name)
}
