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

// Command gencountries regenerates pkg/geo/countries_gen.go from the flat
// text tables under testdata/, mirroring the codegen step the original
// implementation ran at build time: one source-of-truth text file per
// column, one generated Go file with the columns zipped back together.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const countryCount = 255

var columns = []struct {
	file    string
	varName string
	doc     string
}{
	{"countries-names.txt", "countryNames", "countryNames holds the country/region display name for each index, 0..254."},
	{"countries-alpha2.txt", "countryAlpha2", "countryAlpha2 holds the ISO-3166-1 alpha-2 code for each index. Pseudo-\n// countries (Anonymous Proxy, Satellite Provider, Other) use their MaxMind-\n// assigned two-character codes (A1, A2, O1) rather than an ISO code."},
	{"countries-alpha3.txt", "countryAlpha3", "countryAlpha3 holds the three-letter code for each index, taken from the\n// MaxMind GeoIP country table."},
	{"countries-continents.txt", "countryContinent", "countryContinent holds the two-letter continent code for each index, or\n// \"\" when the index names a pseudo-country with no continent (Anonymous\n// Proxy, Satellite Provider, Other, and index 0)."},
}

func main() {
	testdataDir := flag.String("testdata", "testdata", "directory containing countries-*.txt source files")
	outFile := flag.String("out", filepath.Join("pkg", "geo", "countries_gen.go"), "path to write the generated Go file")
	flag.Parse()

	var sb strings.Builder
	sb.WriteString("// Code generated by tools/gencountries from testdata/countries*.txt; DO NOT EDIT.\n\n")
	sb.WriteString("package geo\n\n")

	for i, col := range columns {
		values, err := readColumn(filepath.Join(*testdataDir, col.file))
		if err != nil {
			fmt.Fprintf(os.Stderr, "gencountries: %v\n", err)
			os.Exit(1)
		}
		if len(values) != countryCount {
			fmt.Fprintf(os.Stderr, "gencountries: %s: want %d rows, got %d\n", col.file, countryCount, len(values))
			os.Exit(1)
		}
		writeArray(&sb, col.varName, col.doc, values)
		if i != len(columns)-1 {
			sb.WriteString("\n")
		}
	}

	if err := os.WriteFile(*outFile, []byte(sb.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "gencountries: %v\n", err)
		os.Exit(1)
	}
}

// readColumn reads one value per line, preserving blank lines as "" so the
// index lines up with the MaxMind country-index numbering exactly.
func readColumn(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var values []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		values = append(values, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func writeArray(sb *strings.Builder, name, doc string, values []string) {
	fmt.Fprintf(sb, "// %s\n", doc)
	fmt.Fprintf(sb, "var %s = [%d]string{\n", name, countryCount)
	const perLine = 6
	for i := 0; i < len(values); i += perLine {
		end := i + perLine
		if end > len(values) {
			end = len(values)
		}
		sb.WriteString("\t")
		for j := i; j < end; j++ {
			fmt.Fprintf(sb, "%q", values[j])
			if j != end-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString(",\n")
	}
	sb.WriteString("}\n")
}
