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

import "io"

// detectResult holds the fields the edition detector derives from a
// database's trailer (spec §4.3).
type detectResult struct {
	edition      Edition
	recordLength int
	segmentBase  uint32
}

// defaultDetectResult is what detectEdition returns when the trailer scan
// exhausts structureInfoMaxSize iterations without finding the marker
// (spec §4.3 step 4: "leave defaults").
func defaultDetectResult() detectResult {
	return detectResult{
		edition:      Country,
		recordLength: standardRecordLength,
		segmentBase:  countryBegin,
	}
}

// detectEdition scans the trailer of a database of the given byte size,
// identifying the edition, record width, and segment base. It reads only
// through ra, at explicit offsets, so it never disturbs any other reader's
// position on the same handle (spec §5: no per-node file reopen, no shared
// mutable stream position).
func detectEdition(ra io.ReaderAt, size int64) (detectResult, error) {
	result := defaultDetectResult()

	buf := make([]byte, 4)
	pos := size - 3

	for i := 0; i < structureInfoMaxSize; i++ {
		if pos < 0 {
			break
		}
		if _, err := ra.ReadAt(buf[:3], pos); err != nil {
			break
		}
		if buf[0] == 0xFF && buf[1] == 0xFF && buf[2] == 0xFF {
			if _, err := ra.ReadAt(buf[:1], pos+3); err != nil {
				break
			}
			raw := buf[0]
			edition := Edition(raw)
			if raw >= 106 {
				edition = Edition(raw - editionShift)
			}
			result.edition = edition
			applyEditionGeometry(ra, pos+4, edition, &result)
			return result, nil
		}
		pos--
	}

	return result, nil
}

// applyEditionGeometry fills in segmentBase/recordLength for the edition
// identified at the trailer marker, per the table in spec §4.3.
func applyEditionGeometry(ra io.ReaderAt, segmentFieldOffset int64, edition Edition, result *detectResult) {
	switch edition {
	case RegionRev0:
		result.segmentBase = stateBeginRev0
		result.recordLength = standardRecordLength
	case RegionRev1:
		result.segmentBase = stateBeginRev1
		result.recordLength = standardRecordLength
	case CityRev0, CityRev1, CityRev1V6, ASNum, ASNumV6:
		result.segmentBase = readSegmentBase(ra, segmentFieldOffset)
		result.recordLength = standardRecordLength
	case Org, ISP:
		result.segmentBase = readSegmentBase(ra, segmentFieldOffset)
		result.recordLength = orgRecordLength
	default: // Country, CountryV6, and anything unrecognized
		result.segmentBase = countryBegin
		result.recordLength = standardRecordLength
	}
}

// readSegmentBase reads the 3-byte little-endian segment base that follows
// the edition byte for variable-segment editions. A short read (truncated
// trailer) leaves the segment base at zero, which the tree descent
// surfaces as ErrCorruptDatabase rather than panicking.
func readSegmentBase(ra io.ReaderAt, offset int64) uint32 {
	buf := make([]byte, segmentRecordLength)
	if _, err := ra.ReadAt(buf, offset); err != nil {
		return 0
	}
	return readLEUint(buf, 0, segmentRecordLength)
}
