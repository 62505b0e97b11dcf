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

func TestFieldsOmitsAbsentValues(t *testing.T) {
	record := Record{Country: CountryUnitedKingdom, TimeZone: "Europe/London"}
	fields := Fields(record)

	assert.Equal(t, "United Kingdom", fields[FieldCountry])
	assert.Equal(t, "Europe/London", fields[FieldTimeZone])
	_, hasRegion := fields[FieldRegionCode]
	assert.False(t, hasRegion)
	_, hasDMA := fields[FieldDMA]
	assert.False(t, hasDMA)
}

func TestFieldsIncludesDMAWhenPresent(t *testing.T) {
	dma := NewDesignatedMarketArea(825_858)
	record := Record{Country: CountryUnitedStates, DMA: &dma}
	fields := Fields(record)

	assert.Equal(t, "825", fields[FieldDMA])
	assert.Equal(t, "858", fields[FieldAreaCode])
	assert.Equal(t, "San Diego, CA", fields[FieldMetroName])
}

func TestSortedKeysIsAlphabetical(t *testing.T) {
	fields := map[string]string{"b": "2", "a": "1", "c": "3"}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(fields))
}
