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

// Package errors collects the sentinel errors returned by the legacy GeoIP
// reader and its callers. Callers wrap these with fmt.Errorf("...: %w", ...)
// so errors.Is still matches the sentinel.
package errors

import "errors"

var (
	// ErrOpenFailed indicates the database file could not be opened or read.
	ErrOpenFailed = errors.New("cannot open geoip database")

	// ErrInvalidAddress indicates the textual address parsed as neither v4 nor v6.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidDatabaseEdition indicates the edition byte is recognized but
	// not supported for the requested operation.
	ErrInvalidDatabaseEdition = errors.New("invalid database edition")

	// ErrCorruptDatabase indicates tree descent exhausted the bit budget
	// without reaching a terminal record offset, or a string field lacks
	// its terminator.
	ErrCorruptDatabase = errors.New("corrupt database")

	// ErrMissingRecord indicates the terminal offset equals segmentBase: the
	// address is present in the tree but carries no record.
	ErrMissingRecord = errors.New("no record for address")

	// ErrDiscoveryFailed indicates a STUN public-address discovery attempt failed.
	ErrDiscoveryFailed = errors.New("failed to discover public address")

	// ErrResolveFailed indicates DNS resolution of a hostname target failed.
	ErrResolveFailed = errors.New("failed to resolve hostname")
)
