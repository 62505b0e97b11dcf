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
	"os"

	gerrors "github.com/wiseaidev/ipcap-go/internal/geoipfmt/errors"
	"github.com/wiseaidev/ipcap-go/pkg/address"
	"github.com/wiseaidev/ipcap-go/pkg/geo"
)

// Reader is a handle on an opened legacy GeoIP database. It holds an
// io.ReaderAt rather than a stateful stream, so every lookup supplies its
// own offsets and a single Reader is safe to call from many goroutines at
// once (spec §5 option (c): the reader never reopens the file per node and
// never shares a mutable seek position across calls).
type Reader struct {
	file         *os.File
	edition      Edition
	recordLength int
	segmentBase  uint32
}

// Open opens path read-only and runs the edition detector against its
// trailer. The returned Reader owns file and must be closed with Close.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, gerrors.ErrOpenFailed
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, gerrors.ErrOpenFailed
	}

	result, err := detectEdition(f, info.Size())
	if err != nil {
		_ = f.Close()
		return nil, gerrors.ErrOpenFailed
	}

	return &Reader{
		file:         f,
		edition:      result.edition,
		recordLength: result.recordLength,
		segmentBase:  result.segmentBase,
	}, nil
}

// Edition reports the database's detected edition, mainly for diagnostics
// (the lookup command logs it at debug level, shown with --verbose).
func (r *Reader) Edition() Edition {
	return r.edition
}

// LookupOffset parses text and descends the radix tree, returning the
// terminal child value exactly as spec §4.4 defines it: never a tree-node
// index, always either a value >= segmentBase or ErrCorruptDatabase.
func (r *Reader) LookupOffset(text string) (uint32, error) {
	addr, err := address.Parse(text)
	if err != nil {
		return 0, err
	}
	return lookupOffset(r.file, r.recordLength, r.segmentBase, addr, addr.SeekDepth())
}

// LookupRecord parses text, descends the tree, and decodes the record at
// the terminal offset. For city editions this is the full decoder (§4.5);
// for every other edition it returns the minimal {country, time_zone} form
// the facade's contract allows.
func (r *Reader) LookupRecord(text string) (geo.Record, error) {
	rec, err := r.LookupOffset(text)
	if err != nil {
		return geo.Record{}, err
	}
	if rec == r.segmentBase {
		return geo.Record{}, gerrors.ErrMissingRecord
	}

	if !r.edition.IsCityEdition() {
		country := geo.Country(rec - r.segmentBase)
		return decodeMinimalRecord(country), nil
	}

	return decodeRecord(r.file, rec, r.recordLength, r.segmentBase, r.edition)
}

// LookupTimeZone is a convenience over LookupRecord that returns only the
// resolved time zone.
func (r *Reader) LookupTimeZone(text string) (string, error) {
	record, err := r.LookupRecord(text)
	if err != nil {
		return "", err
	}
	return record.TimeZone, nil
}

// LookupCountryCode is a convenience over LookupRecord that returns only the
// ISO alpha-2 country code.
func (r *Reader) LookupCountryCode(text string) (string, error) {
	record, err := r.LookupRecord(text)
	if err != nil {
		return "", err
	}
	return record.CountryCode(), nil
}

// Close releases the underlying file handle. The reader must not be used
// afterward.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
