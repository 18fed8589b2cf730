// -*- Mode: Go; indent-tabs-mode: t -*-
//go:build cgo && unix && getent_legacy

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

// Legacy strategy, for platforms (or builds) where the *_r forms are
// not wanted: the legacy forms signal "not found" and "error"
// indistinguishably, as a NULL result plus whatever is in errno.
//
// errno is per OS thread and a goroutine can migrate between cgo
// calls, so the clear-call-read sequence has to stay inside a single C
// shim; nothing else may run between the lookup and the errno read.
// The shims normalize: NULL result with errno still clear is "not
// found", NULL result with errno set is that error. The scratch
// buffer is unused; the legacy forms keep their own static storage and
// the fields are copied out of it into the caller's record before
// returning.

/*
#include <errno.h>
#include <sys/types.h>
#include <pwd.h>
#include <grp.h>
#include <stdlib.h>

static struct passwd *my_getpwuid(unsigned int uid, int *errnop) {
	struct passwd *r;
	errno = 0;
	r = getpwuid((uid_t)uid);
	*errnop = (r == NULL) ? errno : 0;
	return r;
}

static struct passwd *my_getpwnam(const char *name, int *errnop) {
	struct passwd *r;
	errno = 0;
	r = getpwnam(name);
	*errnop = (r == NULL) ? errno : 0;
	return r;
}

static struct group *my_getgrgid(unsigned int gid, int *errnop) {
	struct group *r;
	errno = 0;
	r = getgrgid((gid_t)gid);
	*errnop = (r == NULL) ? errno : 0;
	return r;
}

static struct group *my_getgrnam(const char *name, int *errnop) {
	struct group *r;
	errno = 0;
	r = getgrnam(name);
	*errnop = (r == NULL) ? errno : 0;
	return r;
}
*/
import "C"

import (
	"syscall"
	"unsafe"

	"github.com/getentlib/getent/sys"
)

func getpwuid(uid sys.UserID, pwd *Passwd, buf []byte) (*Passwd, syscall.Errno) {
	_ = buf

	var cerrno C.int
	result := C.my_getpwuid(C.uint(uid), &cerrno)
	if result == nil {
		return nil, syscall.Errno(cerrno)
	}
	fillPasswd(pwd, result)
	return pwd, 0
}

func getpwnam(name string, pwd *Passwd, buf []byte) (*Passwd, syscall.Errno) {
	_ = buf

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var cerrno C.int
	result := C.my_getpwnam(cname, &cerrno)
	if result == nil {
		return nil, syscall.Errno(cerrno)
	}
	fillPasswd(pwd, result)
	return pwd, 0
}

func getgrgid(gid sys.GroupID, grp *Group, buf []byte) (*Group, syscall.Errno) {
	_ = buf

	var cerrno C.int
	result := C.my_getgrgid(C.uint(gid), &cerrno)
	if result == nil {
		return nil, syscall.Errno(cerrno)
	}
	fillGroup(grp, result)
	return grp, 0
}

func getgrnam(name string, grp *Group, buf []byte) (*Group, syscall.Errno) {
	_ = buf

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var cerrno C.int
	result := C.my_getgrnam(cname, &cerrno)
	if result == nil {
		return nil, syscall.Errno(cerrno)
	}
	fillGroup(grp, result)
	return grp, 0
}
