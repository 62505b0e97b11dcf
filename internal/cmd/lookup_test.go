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

package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	gerrors "github.com/wiseaidev/ipcap-go/internal/geoipfmt/errors"
)

func TestExitCodeForMapsEverySentinel(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{gerrors.ErrInvalidAddress, ExitInvalidAddress},
		{gerrors.ErrOpenFailed, ExitDatabaseError},
		{gerrors.ErrCorruptDatabase, ExitDatabaseError},
		{gerrors.ErrInvalidDatabaseEdition, ExitDatabaseError},
		{gerrors.ErrMissingRecord, ExitMissingRecord},
		{errors.New("unmapped error"), ExitDatabaseError},
	}

	for _, c := range cases {
		assert.Equal(t, c.code, exitCodeFor(c.err))
	}
}

func TestExitCodeForUnwrapsWrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), gerrors.ErrMissingRecord)
	assert.Equal(t, ExitMissingRecord, exitCodeFor(wrapped))
}

func TestExitCodeRoundTripsThroughExitError(t *testing.T) {
	err := errExitCode(ExitInvalidAddress, gerrors.ErrInvalidAddress)
	assert.Equal(t, ExitInvalidAddress, ExitCode(err))
	assert.True(t, errors.Is(err, gerrors.ErrInvalidAddress))
}

func TestExitCodeNilIsOK(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
}

func TestExitCodeUnrecognizedErrorIsDatabaseError(t *testing.T) {
	assert.Equal(t, ExitDatabaseError, ExitCode(errors.New("not an exitError")))
}
