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

// Edition identifies the schema of a legacy GeoIP database, read from the
// trailer byte (minus 105 when the stored value is >= 106).
type Edition uint8

const (
	Country    Edition = 1
	CityRev1   Edition = 2
	RegionRev1 Edition = 3
	ISP        Edition = 4
	Org        Edition = 5
	CityRev0   Edition = 6
	RegionRev0 Edition = 7
	Proxy      Edition = 8
	ASNum      Edition = 9
	NetSpeed   Edition = 11
	CountryV6  Edition = 12
	ASNumV6    Edition = 21
	CityRev1V6 Edition = 30

	// editionShift is subtracted from the raw trailer byte when it is >= 106.
	editionShift = 105
)

// cityEditions are the editions the record decoder (record.go) understands.
var cityEditions = map[Edition]bool{
	CityRev0:   true,
	CityRev1:   true,
	CityRev1V6: true,
}

// IsCityEdition reports whether e carries a full city-style record layout.
func (e Edition) IsCityEdition() bool {
	return cityEditions[e]
}

// segmentRecordLength is the width, in bytes, of the little-endian segment
// base read from the trailer for variable-segment editions.
const segmentRecordLength = 3

// Fixed segment bases for editions whose geometry the trailer does not encode
// directly (spec §4.3 table).
const (
	countryBegin   = 16_776_960 // 0x00_FF_FF_00
	stateBeginRev0 = 16_700_000
	stateBeginRev1 = 16_000_000
)

const (
	standardRecordLength = 3
	orgRecordLength      = 4
)

// structureInfoMaxSize bounds the trailer scan (spec §4.3 step 3).
const structureInfoMaxSize = 20

// fullRecordLength is the number of bytes read at a city record offset
// before decoding its fields (spec §4.5).
const fullRecordLength = 50

// seekDepth32/seekDepth128 are the zero-indexed top bit positions walked by
// the tree descent for IPv4 and IPv6 address spaces respectively (spec §4.4).
const (
	seekDepth32  = 31
	seekDepth128 = 127
)
