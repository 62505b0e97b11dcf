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

// Package cmd implements the ipcap command-line surface: a cobra command
// tree over the legacy GeoIP reader facade.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wiseaidev/ipcap-go/internal/config"
)

var (
	flagDatabase string
	flagVerbose  bool
	log          = logrus.New()
)

// Exit codes for the lookup/resolve/whoami commands, per spec §6.
const (
	ExitOK             = 0
	ExitInvalidAddress = 1
	ExitDatabaseError  = 2
	ExitMissingRecord  = 3
)

// NewRootCommand builds the ipcap root command and attaches every
// subcommand.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ipcap",
		Short: "Offline IPv4/IPv6 geolocation against a legacy GeoIP database",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&flagDatabase, "database", "", "path to the legacy GeoIP database file (overrides config/env)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(
		newLookupCommand(),
		newResolveCommand(),
		newWhoamiCommand(),
		newServeCommand(),
		newBatchCommand(),
		newGenCountriesCommand(),
	)

	return root
}

// resolveDatabasePath picks the database path for the given address family,
// honoring --database ahead of config/env/default.
func resolveDatabasePath(family string) (string, error) {
	cfg, err := config.Load(flagDatabase)
	if err != nil {
		return "", err
	}
	return cfg.DatabasePath(family), nil
}
