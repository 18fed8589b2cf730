// -*- Mode: Go; indent-tabs-mode: t -*-
//go:build cgo && unix

/*
 * Copyright (C) 2026 Getent Authors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

// Package hostent looks up host names through the platform's
// gethostbyname facility behind one uniform, reentrant-safe calling
// convention.
//
// This package is for resolvers that cannot use the richer
// getaddrinfo-style machinery; anything that can should use that (in
// Go, the net package) and never come here. Accordingly the package
// only exists in cgo builds on unix: without cgo there is no libc
// resolver to wrap and the package is compiled out entirely.
//
// The strategy is fixed at build time:
//
//   - where the platform has a reentrant gethostbyname_r (however it
//     spells its return convention), delegate to it with the caller's
//     scratch buffer;
//   - elsewhere, or under the getent_legacy build tag, call the legacy
//     gethostbyname and copy the thread-local h_errno out immediately,
//     while it is still valid.
//
// Either way the outcome is normalized to: non-nil result and status 0
// on success, nil result and a nonzero status sentinel on failure. The
// platform conventions disagree too much for any finer failure detail
// to survive the normalization; callers get the resolver-specific
// error indicator, where the strategy can provide one, and nothing
// else.
package hostent

import (
	"github.com/getentlib/getent/sys"
)

// Hostent is the netdb.h struct hostent shape: the canonical name,
// any aliases, and the raw addresses of one resolved host. All
// addresses share one family and length.
type Hostent struct {
	Name     string
	Aliases  []string
	AddrType sys.AddrFamily
	Addrs    [][]byte
}

// HErrno is the resolver-specific error indicator (netdb.h h_errno).
// It refines a failed lookup into a named reason, and is only
// meaningful when the wrapper explicitly produced it.
type HErrno int

const (
	HostNotFound HErrno = 1 // HOST_NOT_FOUND
	TryAgain     HErrno = 2 // TRY_AGAIN
	NoRecovery   HErrno = 3 // NO_RECOVERY
	NoData       HErrno = 4 // NO_DATA
)

func (e HErrno) String() string {
	switch e {
	case HostNotFound:
		return "host not found"
	case TryAgain:
		return "try again"
	case NoRecovery:
		return "no recovery"
	case NoData:
		return "no data"
	}
	return "unknown resolver error"
}

// Gethostbyname resolves name to host address records, mimicking
// POSIX gethostbyname_r behaviour regardless of which underlying
// convention the platform uses.
//
// On success the returned reference is the caller's hent, populated,
// and the status is 0. On failure the reference is nil and the status
// is a nonzero sentinel; no finer failure reason is recoverable from
// the return values.
//
// herrno, if non-nil, receives the resolver-specific error indicator
// when the selected strategy produces one; the legacy strategy leaves
// it untouched on failure. buf backs the platform call for strategies
// that want caller storage and is otherwise unused. Buffer sizing is
// the caller's job; nothing is retried internally.
func Gethostbyname(name string, hent *Hostent, buf []byte, herrno *HErrno) (*Hostent, int) {
	return gethostbyname(name, hent, buf, herrno)
}
