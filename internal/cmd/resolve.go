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
	"github.com/wiseaidev/ipcap-go/internal/resolve"
)

func newResolveCommand() *cobra.Command {
	var target string
	var preferV6 bool
	var asJSON bool
	var pretty bool

	c := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a hostname and look it up against the legacy GeoIP database",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := resolve.Hostname(cmd.Context(), target, preferV6, "")
			if err != nil {
				return errExitCode(ExitInvalidAddress, err)
			}

			family := "4"
			if preferV6 {
				family = "6"
			}
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

			record, err := reader.LookupRecord(addr)
			if err != nil {
				return errExitCode(exitCodeFor(err), err)
			}

			printRecord(cmd, record, asJSON, pretty)
			return nil
		},
	}

	c.Flags().StringVarP(&target, "target", "t", "", "hostname to resolve and look up")
	c.Flags().BoolVar(&preferV6, "ipv6", false, "resolve an AAAA record instead of A")
	c.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of key=value lines")
	c.Flags().BoolVar(&pretty, "table", false, "render a pretty table instead of key=value lines")

	return c
}
