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
	"sort"
	"strconv"
)

// Field name constants for a Record's key/value rendering (the CLI's
// "--target" output is a sorted key=value block built from these).
const (
	FieldCountry    = "country"
	FieldRegionCode = "region_code"
	FieldCity       = "city"
	FieldPostalCode = "postal_code"
	FieldLatitude   = "latitude"
	FieldLongitude  = "longitude"
	FieldDMA        = "dma"
	FieldAreaCode   = "area_code"
	FieldMetroName  = "metro_name"
	FieldTimeZone   = "time_zone"
)

// FullFields lists every key Fields may emit, in Record field order. The
// CLI's table and key=value output both print keys in SortedKeys'
// alphabetical order instead.
var FullFields = []string{
	FieldCountry,
	FieldRegionCode,
	FieldCity,
	FieldPostalCode,
	FieldLatitude,
	FieldLongitude,
	FieldDMA,
	FieldAreaCode,
	FieldMetroName,
	FieldTimeZone,
}

// Fields renders a Record into a field=value map (SortedKeys orders it) for the
// CLI's scripting-friendly output and the HTTP facade's JSON response.
// Fields a Record doesn't carry (e.g. DMA on a non-US record) are omitted
// rather than emitted empty.
func Fields(r Record) map[string]string {
	out := map[string]string{
		FieldCountry: r.Country.String(),
	}
	if r.RegionCode != "" {
		out[FieldRegionCode] = r.RegionCode
	}
	if r.City != "" {
		out[FieldCity] = r.City
	}
	if r.PostalCode != "" {
		out[FieldPostalCode] = r.PostalCode
	}
	if r.Latitude != 0 || r.Longitude != 0 {
		out[FieldLatitude] = strconv.FormatFloat(r.Latitude, 'f', 4, 64)
		out[FieldLongitude] = strconv.FormatFloat(r.Longitude, 'f', 4, 64)
	}
	if r.DMA != nil {
		out[FieldDMA] = strconv.Itoa(r.DMA.Code())
		out[FieldAreaCode] = strconv.Itoa(r.DMA.AreaCode())
		out[FieldMetroName] = r.DMA.MetroName()
	}
	if r.TimeZone != "" {
		out[FieldTimeZone] = r.TimeZone
	}
	return out
}

// SortedKeys returns the keys of a Fields map in alphabetical order, the
// order the CLI's scripting-friendly output prints them in (spec §6: exit 0
// + sorted key/value block on success).
func SortedKeys(fields map[string]string) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

