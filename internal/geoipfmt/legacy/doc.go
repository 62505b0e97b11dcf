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

// Package legacy reads the legacy MaxMind GeoIP binary database format.
package legacy

/* Legacy GeoIP Format
	+--------------------------------+
	|       Binary radix tree        |
	+--------------------------------+
	|           Record area          |
	+--------------------------------+
	|     Trailer (up to ~20 bytes)  |
	+--------------------------------+

* All multi-byte integers are little-endian
* Offsets in tree nodes are measured in tree nodes, not bytes (see tree.go)
* Strings are NUL-terminated and ISO-8859-1 encoded

Tree node (single element, recordWidth bytes per child)
	+--------------------------------+--------------------------------+
	|        Left child (3/4B)       |       Right child (3/4B)       |
	+--------------------------------+--------------------------------+
* A child >= segmentBase names a record at byte offset
  child + (2*recordWidth-1)*segmentBase
* A child < segmentBase names another tree node at byte offset
  child * 2 * recordWidth

City record (50 bytes, fixed layout, read at the record offset above)
	+--------+------------------+------------------+------------------+
	| country|  region (cstr)   |    city (cstr)    |  postal (cstr)   |
	+--------+------------------+------------------+------------------+
	|   latitude (3B LE)   |   longitude (3B LE)   |   dma (3B LE, US) |
	+--------+------------------+------------------+------------------+
* latitude/longitude are unsigned 24-bit offsets: degrees = raw/10000 - 180
* dma is only present for City-rev1 editions when country == United States;
  it packs dmaCode*1000 + areaCode

Trailer
	+-----------------+-----------------+------------------------------+
	| 0xFF 0xFF 0xFF  |  edition (1B)   | segmentBase (3B LE, optional) |
	+-----------------+-----------------+------------------------------+
* Scanned backward from the end of the file, up to structureInfoMaxSize times
* edition has 105 subtracted when its raw value is >= 106
*/
