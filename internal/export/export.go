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

// Package export serializes batch lookup results to the compact binary
// form the "batch" command writes, contrasted with the single-lookup
// table/JSON forms.
package export

import (
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/wiseaidev/ipcap-go/pkg/geo"
)

// Entry pairs a requested address with its lookup outcome; Error is set
// instead of Record when the lookup failed, so a batch run's partial
// failures don't abort the whole export.
type Entry struct {
	Address string     `msgpack:"address"`
	Record  *geo.Record `msgpack:"record,omitempty"`
	Error   string     `msgpack:"error,omitempty"`
}

// WriteFile msgpack-encodes entries to path, creating or truncating it.
func WriteFile(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := msgpack.NewEncoder(f)
	return enc.Encode(entries)
}
