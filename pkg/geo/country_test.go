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

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryKnownEntries(t *testing.T) {
	cases := []struct {
		country Country
		alpha2  string
		alpha3  string
		name    string
	}{
		{CountryUnitedKingdom, "GB", "GBR", "United Kingdom"},
		{CountryPoland, "PL", "POL", "Poland"},
		{CountrySaudiArabia, "SA", "SAU", "Saudi Arabia"},
		{CountryUnitedStates, "US", "USA", "United States"},
	}
	for _, c := range cases {
		assert.Equal(t, c.alpha2, c.country.Alpha2())
		assert.Equal(t, c.alpha3, c.country.Alpha3())
		assert.Equal(t, c.name, c.country.Name())
	}
}

func TestCountryPseudoEntriesHaveNoContinent(t *testing.T) {
	for _, c := range []Country{CountryAnonymousProxy, CountrySatelliteProvider, CountryOther} {
		_, ok := c.Continent()
		assert.False(t, ok, "pseudo-country %d should have no continent", c)
	}
}

func TestCountryContinentMatchesKnownEntries(t *testing.T) {
	continent, ok := CountryUnitedStates.Continent()
	assert.True(t, ok)
	assert.Equal(t, NorthAmerica, continent)
	assert.Equal(t, "NA", continent.Alpha2())

	continent, ok = CountryUnitedKingdom.Continent()
	assert.True(t, ok)
	assert.Equal(t, Europe, continent)

	continent, ok = CountrySaudiArabia.Continent()
	assert.True(t, ok)
	assert.Equal(t, Asia, continent)
}

func TestCountryFromAlpha2RoundTrip(t *testing.T) {
	c, ok := CountryFromAlpha2("US")
	assert.True(t, ok)
	assert.Equal(t, CountryUnitedStates, c)

	_, ok = CountryFromAlpha2("ZZ")
	assert.False(t, ok)
}

func TestCountryUnknownIndexIsEmpty(t *testing.T) {
	assert.Equal(t, "", Country(0).Alpha2())
	assert.Equal(t, "Unknown", Country(0).String())
}
