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

package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseV4(t *testing.T) {
	addr, err := Parse("192.168.1.1")
	require.NoError(t, err)
	assert.Equal(t, 32, addr.Bits)
	assert.Equal(t, uint32(3_232_235_777), addr.Uint32())
	assert.Equal(t, 31, addr.SeekDepth())
}

func TestParseV4Invalid(t *testing.T) {
	_, err := Parse("not-an-address")
	assert.Error(t, err)
}

func TestParseV4RejectsOutOfRangeOctets(t *testing.T) {
	_, err := Parse("999.999.999.999")
	assert.Error(t, err)
}

func TestParseV6(t *testing.T) {
	addr, err := Parse("2a08:1450:300f:900::1003")
	require.NoError(t, err)
	assert.Equal(t, 128, addr.Bits)
	assert.Equal(t, 127, addr.SeekDepth())

	// spec.md §8 invariant 2: only the first four 16-bit groups feed the
	// result, and the fourth group lands unshifted at bit 0.
	expectedHi := uint64(0x2a08)<<48 | uint64(0x1450)<<32 | uint64(0x300f)
	expectedLo := uint64(0x0900)
	assert.Equal(t, expectedHi, addr.Hi)
	assert.Equal(t, expectedLo, addr.Lo)
}

func TestParseV6Invalid(t *testing.T) {
	_, err := Parse("not:a:valid:address")
	assert.Error(t, err)
}

func TestBit(t *testing.T) {
	addr := Address{Lo: 0b1010, Hi: 0b0101, Bits: 128}
	assert.Equal(t, uint32(0), addr.Bit(0))
	assert.Equal(t, uint32(1), addr.Bit(1))
	assert.Equal(t, uint32(1), addr.Bit(64))
	assert.Equal(t, uint32(0), addr.Bit(65))
}
