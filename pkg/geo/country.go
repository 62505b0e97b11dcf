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

// Package geo holds the static geography tables a city-style legacy GeoIP
// record is decoded against: country index to name/alpha-2/alpha-3/continent,
// DMA code to metro name, and (country, region) to time zone. The tables in
// *_gen.go are produced by tools/gencountries from testdata/*.txt and must
// never be hand-edited; the DMA and time-zone tables in dma.go and
// timezone.go are hand-maintained, and everything else in this package is
// the accessor surface the reader calls through.
package geo

// Country is a country index as stored in a city record's first byte: a
// closed set of 255 values, including MaxMind's pseudo-countries (Anonymous
// Proxy, Satellite Provider, Other) which carry no continent.
type Country uint8

// A handful of named constants for countries referenced by tests and by the
// record decoder's US-only DMA check; the full set is addressed by index,
// not by name.
const (
	CountryUnknown            Country = 0
	CountryUnitedKingdom       Country = 77
	CountryPoland              Country = 174
	CountrySaudiArabia         Country = 187
	CountryUnitedStates        Country = 225
	CountryAnonymousProxy      Country = 244
	CountrySatelliteProvider   Country = 245
	CountryOther               Country = 246
)

// Name returns the country or region display name, or "" for an out-of-range
// or unassigned index.
func (c Country) Name() string {
	if int(c) >= len(countryNames) {
		return ""
	}
	return countryNames[c]
}

// Alpha2 returns the ISO-3166-1 alpha-2 code, or the MaxMind pseudo-country
// code (A1/A2/O1) for the three non-geographic entries.
func (c Country) Alpha2() string {
	if int(c) >= len(countryAlpha2) {
		return ""
	}
	return countryAlpha2[c]
}

// Alpha3 returns the three-letter code.
func (c Country) Alpha3() string {
	if int(c) >= len(countryAlpha3) {
		return ""
	}
	return countryAlpha3[c]
}

// String satisfies fmt.Stringer with the display name, falling back to
// "Unknown" to match the source tool's tabular output for index 0.
func (c Country) String() string {
	if name := c.Name(); name != "" {
		return name
	}
	return "Unknown"
}

// Continent returns the country's continent and true, or the zero Continent
// and false when the index has none (index 0 and the three pseudo-countries).
func (c Country) Continent() (Continent, bool) {
	if int(c) >= len(countryContinent) {
		return 0, false
	}
	code := countryContinent[c]
	if code == "" {
		return 0, false
	}
	return continentFromAlpha2(code)
}

// CountryFromAlpha2 looks up a Country by its two-letter code, scanning the
// generated table. The table is small enough (255 entries) that a linear
// scan beats maintaining a second reverse-index map in lock-step.
func CountryFromAlpha2(code string) (Country, bool) {
	for i, v := range countryAlpha2 {
		if i != 0 && v == code {
			return Country(i), true
		}
	}
	return 0, false
}
