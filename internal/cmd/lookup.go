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
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	gerrors "github.com/wiseaidev/ipcap-go/internal/geoipfmt/errors"
	"github.com/wiseaidev/ipcap-go/internal/geoipfmt/legacy"
	"github.com/wiseaidev/ipcap-go/pkg/geo"
)

func newLookupCommand() *cobra.Command {
	var target string
	var asJSON bool
	var pretty bool

	c := &cobra.Command{
		Use:   "lookup",
		Short: "Look up an address against the legacy GeoIP database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if target == "" {
				return errExitCode(ExitInvalidAddress, gerrors.ErrInvalidAddress)
			}

			family := "4"
			if strings.Contains(target, ":") {
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
			log.WithField("edition", reader.Edition()).Debug("detected database edition")

			record, err := reader.LookupRecord(target)
			if err != nil {
				return errExitCode(exitCodeFor(err), err)
			}

			printRecord(cmd, record, asJSON, pretty)
			return nil
		},
	}

	c.Flags().StringVarP(&target, "target", "t", "", "address to look up")
	c.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of key=value lines")
	c.Flags().BoolVar(&pretty, "table", false, "render a pretty table instead of key=value lines")

	return c
}

func printRecord(cmd *cobra.Command, record geo.Record, asJSON, pretty bool) {
	fields := geo.Fields(record)

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		_ = enc.Encode(fields)
		return
	}

	if pretty {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"field", "value"})
		for _, k := range geo.SortedKeys(fields) {
			table.Append([]string{k, fields[k]})
		}
		table.Render()
		return
	}

	for _, k := range geo.SortedKeys(fields) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, fields[k])
	}
}

// exitCodeFor maps a geoipfmt/errors sentinel to the CLI exit code it
// should produce, per spec §6. There is exactly one place in the CLI that
// knows this mapping.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, gerrors.ErrInvalidAddress):
		return ExitInvalidAddress
	case errors.Is(err, gerrors.ErrOpenFailed), errors.Is(err, gerrors.ErrCorruptDatabase), errors.Is(err, gerrors.ErrInvalidDatabaseEdition):
		return ExitDatabaseError
	case errors.Is(err, gerrors.ErrMissingRecord):
		return ExitMissingRecord
	default:
		return ExitDatabaseError
	}
}

// errExitCode wraps err so the top-level Execute() can set os.Exit(code).
func errExitCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// ExitCode extracts the process exit code a command error should produce,
// or ExitOK when err is nil.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitDatabaseError
}
