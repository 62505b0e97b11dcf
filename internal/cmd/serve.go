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

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wiseaidev/ipcap-go/internal/geoipfmt/legacy"
	"github.com/wiseaidev/ipcap-go/internal/server"
)

func newServeCommand() *cobra.Command {
	var addr string
	var family string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP lookup facade",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveDatabasePath(family)
			if err != nil {
				return errExitCode(ExitDatabaseError, err)
			}

			reader, err := legacy.Open(path)
			if err != nil {
				log.WithError(err).Error("failed to open database")
				return errExitCode(ExitDatabaseError, err)
			}
			defer reader.Close()

			log.WithField("addr", addr).Info("starting HTTP facade")
			srv := server.New(reader, log)
			if err := srv.Run(addr); err != nil {
				return errExitCode(ExitDatabaseError, err)
			}
			return nil
		},
	}

	c.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	c.Flags().StringVar(&family, "family", "4", "database address family to serve (4 or 6)")

	return c
}
