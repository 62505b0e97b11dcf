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

// Package resolve turns a hostname target into an address the legacy GeoIP
// reader can look up, filling in the original command-line surface's
// "resolve a non-numeric target" gap (left as a TODO upstream).
package resolve

import (
	"context"
	"fmt"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"

	gerrors "github.com/wiseaidev/ipcap-go/internal/geoipfmt/errors"
)

// defaultNameserver is used when the caller doesn't have a more specific
// nameserver in mind: a fixed public resolver, not the system's configured
// one.
const defaultNameserver = "1.1.1.1:53"

// Hostname resolves host to its first A record (or AAAA when preferV6 is
// set) via a direct DNS query against nameserver, normalizing the hostname
// through IDNA first so internationalized domain names resolve correctly.
func Hostname(ctx context.Context, host string, preferV6 bool, nameserver string) (string, error) {
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("normalize hostname %q: %w", host, gerrors.ErrResolveFailed)
	}

	if nameserver == "" {
		nameserver = defaultNameserver
	}

	qtype := dns.TypeA
	if preferV6 {
		qtype = dns.TypeAAAA
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(ascii), qtype)
	msg.RecursionDesired = true

	client := new(dns.Client)
	resp, _, err := client.ExchangeContext(ctx, msg, nameserver)
	if err != nil {
		return "", fmt.Errorf("query %s: %w", ascii, gerrors.ErrResolveFailed)
	}

	for _, rr := range resp.Answer {
		switch rec := rr.(type) {
		case *dns.A:
			return rec.A.String(), nil
		case *dns.AAAA:
			return rec.AAAA.String(), nil
		}
	}

	return "", fmt.Errorf("no address record for %s: %w", ascii, gerrors.ErrResolveFailed)
}
