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
	"github.com/wiseaidev/ipcap-go/pkg/address"
)

// bitSource is the slice of address.Address that the tree descent needs:
// a single bit at a given zero-indexed position.
type bitSource interface {
	Bit(pos int) uint32
}

// lookupOffset descends the address-keyed radix tree and returns the
// terminal child value: a record offset, never a tree-node index
// (spec §4.4, invariant 3 in spec §8).
func lookupOffset(ra io.ReaderAt, recordLength int, segmentBase uint32, addr bitSource, seekDepth int) (uint32, error) {
	if segmentBase == 0 {
		return 0, gerrors.ErrCorruptDatabase
	}

	var offset uint32
	nodeBuf := make([]byte, 2*recordLength)

	for depth := seekDepth; depth >= 0; depth-- {
		nodeOffset := int64(offset) * int64(2*recordLength)
		if _, err := ra.ReadAt(nodeBuf, nodeOffset); err != nil {
			return 0, gerrors.ErrCorruptDatabase
		}

		left := readLEUint(nodeBuf, 0, recordLength)
		right := readLEUint(nodeBuf, recordLength, recordLength)

		chosen := left
		if addr.Bit(depth) == 1 {
			chosen = right
		}

		if chosen >= segmentBase {
			return chosen, nil
		}
		offset = chosen
	}

	return 0, gerrors.ErrCorruptDatabase
}

var _ bitSource = address.Address{}
