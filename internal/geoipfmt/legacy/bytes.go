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

import "golang.org/x/text/encoding/charmap"

// readLEUint sums buf[offset+j] << (8*j) for j in 0..n. n must be in 1..4;
// callers only ever pass the record widths the format defines (3 or 4) or a
// plain 1-byte field, so no bounds check on n itself.
func readLEUint(buf []byte, offset, n int) uint32 {
	var v uint32
	for j := 0; j < n; j++ {
		v |= uint32(buf[offset+j]) << (8 * uint(j))
	}
	return v
}

// readCString returns the index of the terminating NUL byte, the decoded
// text, and whether a terminator was actually found. terminated is false
// when the field runs off the end of buf without a NUL byte — spec.md §4.2
// requires callers to treat that as a malformed record rather than accept
// the trailing bytes as text. The database encodes strings as ISO-8859-1;
// readCString decodes with charmap.ISO8859_1 rather than treating the bytes
// as UTF-8, since every byte value is a valid ISO-8859-1 code point but not
// every byte value is valid UTF-8.
func readCString(buf []byte, offset int) (end int, text string, terminated bool) {
	end = offset
	for end < len(buf) && buf[end] != 0 {
		end++
	}
	terminated = end < len(buf)
	if end == offset {
		return offset, "", terminated
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(buf[offset:end])
	if err != nil {
		// charmap.ISO8859_1 maps every byte, so this path is unreachable in
		// practice; fall back to raw bytes rather than fail a lookup on it.
		return end, string(buf[offset:end]), terminated
	}
	return end, string(decoded), terminated
}
