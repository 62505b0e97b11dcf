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
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

func newGenCountriesCommand() *cobra.Command {
	var testdataDir string
	var outFile string

	c := &cobra.Command{
		Use:    "gencountries",
		Short:  "Regenerate pkg/geo's country tables from testdata/*.txt",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			goCmd := exec.CommandContext(cmd.Context(), "go", "run", "./tools/gencountries",
				"-testdata", testdataDir, "-out", outFile)
			goCmd.Stdout = cmd.OutOrStdout()
			goCmd.Stderr = cmd.ErrOrStderr()
			if err := goCmd.Run(); err != nil {
				return fmt.Errorf("gencountries: %w", err)
			}
			return nil
		},
	}

	c.Flags().StringVar(&testdataDir, "testdata", "testdata", "directory containing countries-*.txt source files")
	c.Flags().StringVar(&outFile, "out", "pkg/geo/countries_gen.go", "path to write the generated Go file")

	return c
}
