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
	"io"

	gerrors "github.com/wiseaidev/ipcap-go/internal/geoipfmt/errors"
	"github.com/wiseaidev/ipcap-go/pkg/geo"
)

// coordinateOffset is the raw-integer width of a latitude or longitude field.
const coordinateOffset = 3

// coordinateBias centers the unsigned 24-bit coordinate encoding on zero:
// degrees = raw/10000 - coordinateBias.
const coordinateBias = 180.0

// coordinateScale converts the raw integer, counted in ten-thousandths of a
// degree, into degrees.
const coordinateScale = 10000.0

// cityRecordOffset converts a tree-descent terminal value into the byte
// offset of its record, per spec §4.5: start = rec + (2*record_width-1)*segment_base.
func cityRecordOffset(rec uint32, recordLength int, segmentBase uint32) int64 {
	return int64(rec) + int64(2*recordLength-1)*int64(segmentBase)
}

// decodeRecord reads a city-style record for terminal tree value rec and
// decodes it per spec §4.5.
func decodeRecord(ra io.ReaderAt, rec uint32, recordLength int, segmentBase uint32, edition Edition) (geo.Record, error) {
	buf := make([]byte, fullRecordLength)
	n, err := ra.ReadAt(buf, cityRecordOffset(rec, recordLength, segmentBase))
	if err != nil && err != io.EOF {
		return geo.Record{}, gerrors.ErrCorruptDatabase
	}
	buf = buf[:n]
	if len(buf) < 1 {
		return geo.Record{}, gerrors.ErrCorruptDatabase
	}

	country := geo.Country(buf[0])
	pos := 1

	regionEnd, region, ok := readCString(buf, pos)
	if !ok {
		return geo.Record{}, gerrors.ErrCorruptDatabase
	}
	pos = regionEnd + 1

	cityEnd, city, ok := readCString(buf, pos)
	if !ok {
		return geo.Record{}, gerrors.ErrCorruptDatabase
	}
	pos = cityEnd + 1

	postalEnd, postal, ok := readCString(buf, pos)
	if !ok {
		return geo.Record{}, gerrors.ErrCorruptDatabase
	}
	pos = postalEnd + 1

	record := geo.Record{
		Country:    country,
		RegionCode: region,
		City:       city,
		PostalCode: postal,
	}

	if pos+2*coordinateOffset > len(buf) {
		record.TimeZone = geo.LookupTimeZone(country.Alpha2(), record.RegionCode)
		return record, nil
	}

	latRaw := readLEUint(buf, pos, coordinateOffset)
	lonRaw := readLEUint(buf, pos+coordinateOffset, coordinateOffset)
	record.Latitude = float64(latRaw)/coordinateScale - coordinateBias
	record.Longitude = float64(lonRaw)/coordinateScale - coordinateBias
	pos += 2 * coordinateOffset

	if (edition == CityRev1 || edition == CityRev1V6) && country == geo.CountryUnitedStates && pos+coordinateOffset <= len(buf) {
		dmaRaw := readLEUint(buf, pos, coordinateOffset)
		dma := geo.NewDesignatedMarketArea(dmaRaw)
		record.DMA = &dma
	}

	record.TimeZone = geo.LookupTimeZone(country.Alpha2(), record.RegionCode)

	return record, nil
}

// decodeMinimalRecord builds the reduced result spec §4.7's lookup_record
// returns for non-city editions: country plus a default time zone, nothing
// else the format doesn't carry for that edition.
func decodeMinimalRecord(country geo.Country) geo.Record {
	return geo.Record{
		Country:  country,
		TimeZone: geo.LookupTimeZone(country.Alpha2(), ""),
	}
}
