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

package pwent

import (
	"errors"
	"fmt"
	"syscall"

	"gopkg.in/retry.v1"

	"github.com/getentlib/getent/sys"
)

// ErrNotFound is returned by the Lookup helpers when no entry matches.
var ErrNotFound = errors.New("no matching database entry")

// The raw wrappers never resize anything; these helpers are the
// caller-side loop made reusable. Each ERANGE doubles the scratch
// buffer for the next attempt, up to the strategy's attempt limit.
var lookupRetryStrategy = retry.LimitCount(8, retry.Regular{Min: 8})

// LookupUID is Getpwuid with buffer sizing handled: it starts from
// BufferSize and reissues the lookup with a doubled buffer on ERANGE.
func LookupUID(uid sys.UserID) (*Passwd, error) {
	pwd := &Passwd{}
	err := lookupLoop(fmt.Sprintf("user id %v", uid), func(buf []byte) (bool, syscall.Errno) {
		result, errno := Getpwuid(uid, pwd, buf)
		return result != nil, errno
	})
	if err != nil {
		return nil, err
	}
	return pwd, nil
}

// LookupName is Getpwnam with buffer sizing handled.
func LookupName(name string) (*Passwd, error) {
	pwd := &Passwd{}
	err := lookupLoop(fmt.Sprintf("user %q", name), func(buf []byte) (bool, syscall.Errno) {
		result, errno := Getpwnam(name, pwd, buf)
		return result != nil, errno
	})
	if err != nil {
		return nil, err
	}
	return pwd, nil
}

// LookupGID is Getgrgid with buffer sizing handled.
func LookupGID(gid sys.GroupID) (*Group, error) {
	grp := &Group{}
	err := lookupLoop(fmt.Sprintf("group id %v", gid), func(buf []byte) (bool, syscall.Errno) {
		result, errno := Getgrgid(gid, grp, buf)
		return result != nil, errno
	})
	if err != nil {
		return nil, err
	}
	return grp, nil
}

// LookupGroup is Getgrnam with buffer sizing handled.
func LookupGroup(name string) (*Group, error) {
	grp := &Group{}
	err := lookupLoop(fmt.Sprintf("group %q", name), func(buf []byte) (bool, syscall.Errno) {
		result, errno := Getgrnam(name, grp, buf)
		return result != nil, errno
	})
	if err != nil {
		return nil, err
	}
	return grp, nil
}

func lookupLoop(what string, get func(buf []byte) (bool, syscall.Errno)) error {
	bufLen := BufferSize()
	for attempt := retry.Start(lookupRetryStrategy, nil); attempt.Next(); {
		found, errno := get(make([]byte, bufLen))
		if errno == syscall.ERANGE {
			bufLen *= 2
			continue
		}
		if errno != 0 {
			return fmt.Errorf("cannot look up %s: %w", what, errno)
		}
		if !found {
			return ErrNotFound
		}
		return nil
	}
	return fmt.Errorf("cannot look up %s: entry does not fit in %d bytes", what, bufLen)
}
