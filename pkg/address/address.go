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

// Package address parses textual IPv4/IPv6 addresses into the integer form
// the legacy GeoIP radix tree is keyed on (spec §4.1).
package address

import (
	"net"
	"strings"

	gerrors "github.com/wiseaidev/ipcap-go/internal/geoipfmt/errors"
)

// Address is the numeric form of a parsed textual address. IPv4 values use
// only the low 32 bits (Lo); IPv6 values span Hi:Lo, encoded the way the
// legacy tree expects rather than as the address's literal 128-bit value —
// see Parse for the exact construction, matching spec.md §8 invariant 2.
type Address struct {
	Hi, Lo uint64
	Bits   int // 32 for IPv4, 128 for IPv6
}

// SeekDepth is the zero-indexed top bit position the tree descent starts
// from for this address's width (spec §4.4: 31 for IPv4, 127 for IPv6).
func (a Address) SeekDepth() int {
	if a.Bits == 32 {
		return 31
	}
	return 127
}

// Bit returns the bit at zero-indexed position pos (0 = least significant)
// of the 128-bit Hi:Lo pair.
func (a Address) Bit(pos int) uint32 {
	if pos >= 64 {
		return uint32((a.Hi >> uint(pos-64)) & 1)
	}
	return uint32((a.Lo >> uint(pos)) & 1)
}

// Uint32 returns the IPv4 value as a plain uint32 (spec §8 invariant 1).
// Only meaningful when Bits == 32.
func (a Address) Uint32() uint32 {
	return uint32(a.Lo)
}

// Parse converts a textual IPv4 or IPv6 address into its Address form.
// Returns ErrInvalidAddress when the text is neither.
func Parse(text string) (Address, error) {
	if strings.Contains(text, ":") {
		return parseV6(text)
	}
	return parseV4(text)
}

func parseV4(text string) (Address, error) {
	ip := net.ParseIP(text)
	if ip == nil {
		return Address{}, gerrors.ErrInvalidAddress
	}
	v4 := ip.To4()
	if v4 == nil {
		return Address{}, gerrors.ErrInvalidAddress
	}
	value := uint64(v4[0])<<24 | uint64(v4[1])<<16 | uint64(v4[2])<<8 | uint64(v4[3])
	return Address{Lo: value, Bits: 32}, nil
}

// parseV6 implements spec.md §8 invariant 2 literally: only the first four
// 16-bit groups (the address's upper 64 bits) feed the result, the third
// group lands at bit 64 rather than its "natural" bit 80, and the fourth
// group lands unshifted at bit 0 rather than at its "natural" bit 64 —
// this mirrors the original implementation's ip_to_number and is asserted by
// a test against its documented literal example, not derived independently.
func parseV6(text string) (Address, error) {
	ip := net.ParseIP(text)
	if ip == nil {
		return Address{}, gerrors.ErrInvalidAddress
	}
	v6 := ip.To16()
	if v6 == nil || ip.To4() != nil {
		return Address{}, gerrors.ErrInvalidAddress
	}

	seg := func(i int) uint64 {
		return uint64(v6[2*i])<<8 | uint64(v6[2*i+1])
	}
	seg0, seg1, seg2, seg3 := seg(0), seg(1), seg(2), seg(3)

	hi := seg0<<48 | seg1<<32 | seg2
	lo := seg3

	return Address{Hi: hi, Lo: lo, Bits: 128}, nil
}
