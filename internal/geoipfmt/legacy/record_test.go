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

package legacy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/wiseaidev/ipcap-go/internal/geoipfmt/errors"
	"github.com/wiseaidev/ipcap-go/pkg/geo"
)

// appendLE appends n little-endian bytes of v to buf.
func appendLE(buf []byte, v uint32, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, byte(v>>(8*uint(i))))
	}
	return buf
}

func appendCString(buf []byte, s string) []byte {
	buf = append(buf, []byte(s)...)
	return append(buf, 0)
}

// buildCityRecord constructs the 50-byte buffer spec §4.5 decodes from the
// given fields. The San Diego example from spec §8 (country=UnitedStates,
// region="CA", city="San Diego", postal="92109", latitude ~32.7977,
// longitude ~-117.2335, dma raw 825858) is built with latRaw 2_127_977,
// lonRaw 627_665 and dmaRaw 825_858.
func buildCityRecord(country byte, region, city, postal string, latRaw, lonRaw, dmaRaw uint32, withDMA bool) []byte {
	buf := []byte{country}
	buf = appendCString(buf, region)
	buf = appendCString(buf, city)
	buf = appendCString(buf, postal)
	buf = appendLE(buf, latRaw, coordinateOffset)
	buf = appendLE(buf, lonRaw, coordinateOffset)
	if withDMA {
		buf = appendLE(buf, dmaRaw, coordinateOffset)
	}
	for len(buf) < fullRecordLength {
		buf = append(buf, 0)
	}
	return buf
}

func TestDecodeRecordSanDiego(t *testing.T) {
	buf := buildCityRecord(byte(geo.CountryUnitedStates), "CA", "San Diego", "92109", 2_127_977, 627_665, 825_858, true)
	ra := bytes.NewReader(buf)

	record, err := decodeRecord(ra, 0, standardRecordLength, 0, CityRev1)
	require.NoError(t, err)

	assert.Equal(t, geo.CountryUnitedStates, record.Country)
	assert.Equal(t, "CA", record.RegionCode)
	assert.Equal(t, "San Diego", record.City)
	assert.Equal(t, "92109", record.PostalCode)
	assert.InDelta(t, 32.7977, record.Latitude, 0.0001)
	assert.InDelta(t, -117.2335, record.Longitude, 0.0001)
	require.NotNil(t, record.DMA)
	assert.Equal(t, 825, record.DMA.Code())
	assert.Equal(t, 858, record.DMA.AreaCode())
	assert.Equal(t, "America/Los_Angeles", record.TimeZone)
}

func TestDecodeRecordUnitedKingdomNoRegionOrCity(t *testing.T) {
	latRaw := uint32((54.0 + 180.0) * coordinateScale)
	lonRaw := uint32((-2.0 + 180.0) * coordinateScale)
	buf := buildCityRecord(byte(geo.CountryUnitedKingdom), "", "", "", latRaw, lonRaw, 0, false)
	ra := bytes.NewReader(buf)

	record, err := decodeRecord(ra, 0, standardRecordLength, 0, CityRev1V6)
	require.NoError(t, err)

	assert.Equal(t, geo.CountryUnitedKingdom, record.Country)
	assert.Empty(t, record.RegionCode)
	assert.Empty(t, record.City)
	assert.InDelta(t, 54.0, record.Latitude, 0.0001)
	assert.InDelta(t, -2.0, record.Longitude, 0.0001)
	assert.Nil(t, record.DMA)
	assert.Equal(t, "Europe/London", record.TimeZone)
}

func TestDecodeRecordDMAOmittedForNonUSCountry(t *testing.T) {
	buf := buildCityRecord(byte(geo.CountrySaudiArabia), "", "", "", 2_127_977, 627_665, 825_858, true)
	ra := bytes.NewReader(buf)

	record, err := decodeRecord(ra, 0, standardRecordLength, 0, CityRev1)
	require.NoError(t, err)

	assert.Nil(t, record.DMA)
	assert.Equal(t, "Asia/Riyadh", record.TimeZone)
}

func TestDecodeRecordRegionFieldWithoutTerminatorIsCorrupt(t *testing.T) {
	// country byte followed by a run of non-NUL bytes that reaches the end
	// of the buffer without ever terminating the region field.
	buf := append([]byte{byte(geo.CountryUnitedStates)}, bytes.Repeat([]byte{'X'}, 9)...)
	ra := bytes.NewReader(buf)

	_, err := decodeRecord(ra, 0, standardRecordLength, 0, CityRev1)
	assert.ErrorIs(t, err, gerrors.ErrCorruptDatabase)
}

func TestDecodeRecordCityFieldWithoutTerminatorIsCorrupt(t *testing.T) {
	buf := []byte{byte(geo.CountryUnitedStates)}
	buf = appendCString(buf, "CA")
	buf = append(buf, bytes.Repeat([]byte{'X'}, 9)...)
	ra := bytes.NewReader(buf)

	_, err := decodeRecord(ra, 0, standardRecordLength, 0, CityRev1)
	assert.ErrorIs(t, err, gerrors.ErrCorruptDatabase)
}

func TestDecodeRecordPostalFieldWithoutTerminatorIsCorrupt(t *testing.T) {
	buf := []byte{byte(geo.CountryUnitedStates)}
	buf = appendCString(buf, "CA")
	buf = appendCString(buf, "San Diego")
	buf = append(buf, bytes.Repeat([]byte{'X'}, 9)...)
	ra := bytes.NewReader(buf)

	_, err := decodeRecord(ra, 0, standardRecordLength, 0, CityRev1)
	assert.ErrorIs(t, err, gerrors.ErrCorruptDatabase)
}

func TestDMAInvariant(t *testing.T) {
	for _, raw := range []uint32{825_858, 501_000, 1_999} {
		dma := geo.NewDesignatedMarketArea(raw)
		assert.Equal(t, int(raw), dma.Code()*1000+dma.AreaCode())
	}
}
