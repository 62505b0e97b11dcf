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

// DesignatedMarketArea is the packed US-specific media-market code a city
// record's trailing 3-byte field encodes: dma_code*1000 + area_code.
type DesignatedMarketArea uint32

// NewDesignatedMarketArea wraps a raw packed value read from a record.
func NewDesignatedMarketArea(raw uint32) DesignatedMarketArea {
	return DesignatedMarketArea(raw)
}

// Code returns the Nielsen DMA code (the metro market identifier).
func (d DesignatedMarketArea) Code() int {
	return int(d) / 1000
}

// AreaCode returns the US telephone area code packed alongside the DMA code.
func (d DesignatedMarketArea) AreaCode() int {
	return int(d) % 1000
}

// MetroName renders the DMA as a human name via the metro-name table,
// falling back to "Unknown DMA" when the code isn't in the table.
func (d DesignatedMarketArea) MetroName() string {
	if name, ok := dmaMetroNames[d.Code()]; ok {
		return name
	}
	return "Unknown DMA"
}

// dmaMetroNames maps Nielsen DMA codes to metro names. This is a
// representative subset of the ~210 published DMAs, not the full table —
// tools/gencountries has no DMA source file checked in, so this is
// hand-maintained rather than generated; see DESIGN.md.
var dmaMetroNames = map[int]string{
	501: "New York, NY",
	503: "Philadelphia, PA",
	504: "Philadelphia, PA",
	506: "Boston, MA",
	511: "Washington, DC",
	517: "Charlotte, NC",
	524: "Atlanta, GA",
	528: "Miami, FL",
	529: "Louisville, KY",
	534: "Orlando, FL",
	539: "Tampa, FL",
	542: "Pittsburgh, PA",
	548: "West Palm Beach, FL",
	560: "Raleigh, NC",
	602: "Chicago, IL",
	609: "St. Louis, MO",
	613: "Minneapolis, MN",
	618: "Houston, TX",
	623: "Dallas-Ft. Worth, TX",
	639: "Jackson, MS",
	641: "San Antonio, TX",
	650: "Oklahoma City, OK",
	659: "Nashville, TN",
	751: "Denver, CO",
	753: "Phoenix, AZ",
	770: "Salt Lake City, UT",
	789: "Tucson, AZ",
	803: "Los Angeles, CA",
	807: "San Francisco-Oakland-San Jose, CA",
	811: "Reno, NV",
	819: "Seattle-Tacoma, WA",
	825: "San Diego, CA",
	828: "Monterey-Salinas, CA",
	839: "Las Vegas, NV",
	862: "Sacramento-Stockton-Modesto, CA",
	866: "Fresno-Visalia, CA",
	881: "Spokane, WA",
}
