// -*- Mode: Go; indent-tabs-mode: t -*-
//go:build unix

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

// Package pwent looks up entries in the system user and group
// databases behind one uniform, reentrant-safe calling convention.
//
// Platforms disagree on how these lookups are done safely. Some expose
// reentrant forms (getpwuid_r and friends) that write into a buffer
// the caller supplies; others only have the legacy forms that hand
// back a pointer into static storage, with thread-safety guarantees
// that range from "fine, it's thread-local" to "don't". The strategy
// is picked once, at build time:
//
//   - cgo builds delegate to the reentrant forms, passing the caller's
//     scratch buffer straight through;
//   - cgo builds with the getent_legacy build tag use the legacy forms
//     and normalize their implicit errno convention into the explicit
//     contract below;
//   - builds without cgo read the database files directly, which is
//     reentrant by construction.
//
// Whatever the strategy, the populated record owns its field storage
// once a call returns; the scratch buffer only backs the lookup itself
// and may be reused for the next call. The wrappers never allocate the
// result record, never grow the buffer, never log and never retry; a
// caller that wants transparent buffer sizing should use LookupUID and
// friends instead.
package pwent

import (
	"syscall"

	"github.com/getentlib/getent/sys"
)

// Passwd is the pwd.h struct passwd shape: one entry of the system
// user database.
type Passwd struct {
	Name   string
	Passwd string
	UID    sys.UserID
	GID    sys.GroupID
	Gecos  string
	Dir    string
	Shell  string
}

// Group is the grp.h struct group shape: one entry of the system
// group database.
type Group struct {
	Name    string
	Passwd  string
	GID     sys.GroupID
	Members []string
}

// defaultBufferSize is used when the platform won't suggest a scratch
// buffer size. 1024 matches the glibc fallback.
const defaultBufferSize = 1024

var bufferSize = sysBufferSize

// BufferSize returns a suggested size for the scratch buffer passed to
// the lookup functions, from sysconf(_SC_GETPW_R_SIZE_MAX) where that
// is available. It is only a starting point: a lookup can still fail
// with ERANGE and must then be reissued by the caller with a bigger
// buffer.
func BufferSize() int {
	return bufferSize()
}

// Getpwuid looks up the user database entry for uid, mimicking POSIX
// getpwuid_r behaviour regardless of what the platform provides.
//
// The possible outcomes are:
//
//	found:     returns pwd, 0; pwd is populated
//	not found: returns nil, 0
//	error:     returns nil, errno (e.g. syscall.ERANGE when buf is too
//	           small; the caller owns resizing and reissuing)
//
// The caller must tell "not found" from "error" by the returned
// reference, never by the errno value alone, and must not consult any
// ambient error state: the failure reason travels only in the return
// values.
func Getpwuid(uid sys.UserID, pwd *Passwd, buf []byte) (*Passwd, syscall.Errno) {
	return getpwuid(uid, pwd, buf)
}

// Getpwnam looks up the user database entry for name. The outcome
// contract is the same as Getpwuid's.
func Getpwnam(name string, pwd *Passwd, buf []byte) (*Passwd, syscall.Errno) {
	return getpwnam(name, pwd, buf)
}

// Getgrgid looks up the group database entry for gid. The outcome
// contract is the same as Getpwuid's.
func Getgrgid(gid sys.GroupID, grp *Group, buf []byte) (*Group, syscall.Errno) {
	return getgrgid(gid, grp, buf)
}

// Getgrnam looks up the group database entry for name. The outcome
// contract is the same as Getpwuid's.
func Getgrnam(name string, grp *Group, buf []byte) (*Group, syscall.Errno) {
	return getgrnam(name, grp, buf)
}
