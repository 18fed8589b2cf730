// -*- Mode: Go; indent-tabs-mode: t -*-

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

// Package sys provides the typed identifiers shared by the lookup
// packages.
package sys

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// UserID is the type of the system's user identifiers (in POSIX, uid_t).
//
// We give it its own explicit type so you don't have to remember
// what it is.
type UserID uint32

// GroupID is the type of the system's group identifiers (in POSIX, gid_t).
type GroupID uint32

const (
	// FlagID can be passed to chown-ish functions to mean "no change",
	// and can be returned from getuid-ish functions to mean "not found".
	FlagID = 1<<32 - 1
)

func (uid UserID) String() string {
	if uid == FlagID {
		return "-1"
	}
	return fmt.Sprintf("%d", uint32(uid))
}

func (gid GroupID) String() string {
	if gid == FlagID {
		return "-1"
	}
	return fmt.Sprintf("%d", uint32(gid))
}

// Getuid returns the real user id of the calling process.
func Getuid() UserID {
	return UserID(unix.Getuid())
}

// Geteuid returns the effective user id of the calling process.
func Geteuid() UserID {
	return UserID(unix.Geteuid())
}

// Getgid returns the real group id of the calling process.
func Getgid() GroupID {
	return GroupID(unix.Getgid())
}

// Getegid returns the effective group id of the calling process.
func Getegid() GroupID {
	return GroupID(unix.Getegid())
}

// AddrFamily is the numeric address family of a resolved host address
// (in POSIX, the h_addrtype of a struct hostent).
type AddrFamily int

const (
	AFInet  = AddrFamily(unix.AF_INET)
	AFInet6 = AddrFamily(unix.AF_INET6)
)

func (f AddrFamily) String() string {
	switch f {
	case AFInet:
		return "inet"
	case AFInet6:
		return "inet6"
	}
	return fmt.Sprintf("af-%d", int(f))
}
