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
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiseaidev/ipcap-go/pkg/address"
	"github.com/wiseaidev/ipcap-go/pkg/geo"
)

// buildChainTreeForAddr builds a recordWidth-byte-per-child tree that
// descends addr's bits from seekDepth down to 0, always choosing the next
// node index until the final node, which chooses terminal.
func buildChainTreeForAddr(addr address.Address, seekDepth, recordWidth int, terminal uint32) []byte {
	nodeCount := seekDepth + 1
	buf := make([]byte, nodeCount*2*recordWidth)

	for k := 0; k < nodeCount; k++ {
		depth := seekDepth - k
		next := uint32(k + 1)
		if k == nodeCount-1 {
			next = terminal
		}

		base := k * 2 * recordWidth
		if addr.Bit(depth) == 1 {
			writeLE(buf, base+recordWidth, recordWidth, next)
		} else {
			writeLE(buf, base, recordWidth, next)
		}
	}
	return buf
}

// buildDatabaseFile assembles a complete synthetic legacy database: a
// chain tree that resolves addr to a single city record, followed by the
// trailer the edition detector scans for.
func buildDatabaseFile(t *testing.T, addr address.Address, record []byte, edition Edition, segmentBase uint32) string {
	t.Helper()

	const recordWidth = standardRecordLength
	terminal := segmentBase + 5
	recordStart := int64(terminal) + int64(2*recordWidth-1)*int64(segmentBase)

	tree := buildChainTreeForAddr(addr, addr.SeekDepth(), recordWidth, terminal)

	buf := make([]byte, recordStart)
	copy(buf, tree)
	buf = append(buf, record...)

	buf = append(buf, 0xFF, 0xFF, 0xFF, byte(edition))
	buf = appendLE(buf, segmentBase, segmentRecordLength)

	dir := t.TempDir()
	path := filepath.Join(dir, "geo_ip_city_v4.dat")
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func TestReaderLookupRecordEndToEnd(t *testing.T) {
	addr, err := address.Parse("108.95.4.105")
	require.NoError(t, err)

	record := buildCityRecord(byte(geo.CountryUnitedStates), "CA", "San Diego", "92109", 2_127_977, 627_665, 825_858, true)
	path := buildDatabaseFile(t, addr, record, CityRev1, 50)

	reader, err := Open(path)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, CityRev1, reader.Edition())

	got, err := reader.LookupRecord("108.95.4.105")
	require.NoError(t, err)
	assert.Equal(t, geo.CountryUnitedStates, got.Country)
	assert.Equal(t, "San Diego", got.City)
	assert.InDelta(t, 32.7977, got.Latitude, 0.0001)
	assert.Equal(t, "America/Los_Angeles", got.TimeZone)
}

func TestReaderLookupTimeZoneConvenience(t *testing.T) {
	addr, err := address.Parse("185.90.90.120")
	require.NoError(t, err)

	record := buildCityRecord(byte(geo.CountrySaudiArabia), "", "", "", 2_127_977, 627_665, 0, false)
	path := buildDatabaseFile(t, addr, record, CityRev1, 50)

	reader, err := Open(path)
	require.NoError(t, err)
	defer reader.Close()

	tz, err := reader.LookupTimeZone("185.90.90.120")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Riyadh", tz)
}

func TestReaderConcurrentLookups(t *testing.T) {
	addr, err := address.Parse("108.95.4.105")
	require.NoError(t, err)

	record := buildCityRecord(byte(geo.CountryUnitedStates), "CA", "San Diego", "92109", 2_127_977, 627_665, 825_858, true)
	path := buildDatabaseFile(t, addr, record, CityRev1, 50)

	reader, err := Open(path)
	require.NoError(t, err)
	defer reader.Close()

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := reader.LookupRecord("108.95.4.105")
			if err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent lookup failed: %v", err)
	}
}

func TestReaderOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist.dat"))
	assert.Error(t, err)
}
