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

// Package discover finds the caller's own public address via a STUN
// binding request, feeding the "whoami" command's self-geolocation.
package discover

import (
	"fmt"

	"github.com/pion/stun/v2"

	gerrors "github.com/wiseaidev/ipcap-go/internal/geoipfmt/errors"
)

// defaultSTUNServer is a well-known public STUN server used when the caller
// doesn't specify one.
const defaultSTUNServer = "stun.l.google.com:19302"

// PublicAddress performs a STUN binding request against server (or
// defaultSTUNServer when empty) and returns the discovered public IP,
// without its port.
func PublicAddress(server string) (string, error) {
	if server == "" {
		server = defaultSTUNServer
	}

	conn, err := stun.Dial("udp", server)
	if err != nil {
		return "", fmt.Errorf("dial %s: %w", server, gerrors.ErrDiscoveryFailed)
	}
	defer conn.Close()

	message := stun.MustBuild(stun.TransactionID, stun.BindingRequest)

	var publicIP string
	var doErr error
	done := make(chan struct{})

	err = conn.Do(message, func(res stun.Event) {
		defer close(done)
		if res.Error != nil {
			doErr = res.Error
			return
		}
		var xorAddr stun.XORMappedAddress
		if getErr := xorAddr.GetFrom(res.Message); getErr != nil {
			doErr = getErr
			return
		}
		publicIP = xorAddr.IP.String()
	})
	if err != nil {
		return "", fmt.Errorf("stun request: %w", gerrors.ErrDiscoveryFailed)
	}
	<-done

	if doErr != nil || publicIP == "" {
		return "", gerrors.ErrDiscoveryFailed
	}
	return publicIP, nil
}
