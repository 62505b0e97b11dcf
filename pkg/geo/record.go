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

// Record is the decoded result of a city-style lookup: a closed struct
// rather than a string-keyed map, so a typo in a field name is a compile
// error instead of a silently-nil lookup.
type Record struct {
	Country     Country
	RegionCode  string
	City        string
	PostalCode  string
	Latitude    float64
	Longitude   float64
	DMA         *DesignatedMarketArea
	TimeZone    string
}

// CountryCode returns the ISO-3166-1 alpha-2 code for Record.Country, the
// convenience form most callers want without holding onto the full Country
// value.
func (r Record) CountryCode() string {
	return r.Country.Alpha2()
}
