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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/wiseaidev/ipcap-go/internal/export"
	"github.com/wiseaidev/ipcap-go/internal/geoipfmt/legacy"
)

func newBatchCommand() *cobra.Command {
	var input string
	var output string
	var family string

	c := &cobra.Command{
		Use:   "batch",
		Short: "Look up every address in a file and export the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			addrs, err := readAddresses(input)
			if err != nil {
				return errExitCode(ExitInvalidAddress, err)
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

			bar := progressbar.Default(int64(len(addrs)))
			entries := make([]export.Entry, 0, len(addrs))
			for _, addr := range addrs {
				entry := export.Entry{Address: addr}
				record, err := reader.LookupRecord(addr)
				if err != nil {
					entry.Error = err.Error()
				} else {
					entry.Record = &record
				}
				entries = append(entries, entry)
				_ = bar.Add(1)
			}

			if err := export.WriteFile(output, entries); err != nil {
				return errExitCode(ExitDatabaseError, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d results to %s\n", len(entries), output)
			return nil
		},
	}

	c.Flags().StringVar(&input, "input", "", "path to a file with one address per line")
	c.Flags().StringVar(&output, "output", "out.msgpack", "path to write the msgpack-encoded results")
	c.Flags().StringVar(&family, "family", "4", "database address family to query (4 or 6)")
	_ = c.MarkFlagRequired("input")

	return c
}

func readAddresses(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var addrs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		addrs = append(addrs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return addrs, nil
}
