// -*- Mode: Go; indent-tabs-mode: t -*-
//go:build cgo && unix && !getent_legacy

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

/*
#cgo solaris CFLAGS: -D_POSIX_PTHREAD_SEMANTICS
#include <sys/types.h>
#include <pwd.h>
#include <grp.h>
#include <stdlib.h>

static int my_getpwuid_r(unsigned int uid, struct passwd *pwd,
	char *buf, size_t buflen, struct passwd **result) {
	return getpwuid_r((uid_t)uid, pwd, buf, buflen, result);
}

static int my_getpwnam_r(const char *name, struct passwd *pwd,
	char *buf, size_t buflen, struct passwd **result) {
	return getpwnam_r(name, pwd, buf, buflen, result);
}

static int my_getgrgid_r(unsigned int gid, struct group *grp,
	char *buf, size_t buflen, struct group **result) {
	return getgrgid_r((gid_t)gid, grp, buf, buflen, result);
}

static int my_getgrnam_r(const char *name, struct group *grp,
	char *buf, size_t buflen, struct group **result) {
	return getgrnam_r(name, grp, buf, buflen, result);
}
*/
import "C"

import (
	"syscall"
	"unsafe"

	"github.com/getentlib/getent/sys"
)

// Reentrant strategy: the platform's *_r forms write only into the
// caller's storage, so the buffer and length are passed through
// unchanged and the POSIX three-way contract comes back ready-made.

func getpwuid(uid sys.UserID, pwd *Passwd, buf []byte) (*Passwd, syscall.Errno) {
	var cpwd C.struct_passwd
	var result *C.struct_passwd

	p, n := cBuf(buf)
	rv := C.my_getpwuid_r(C.uint(uid), &cpwd, p, n, &result)
	if rv != 0 {
		return nil, syscall.Errno(rv)
	}
	if result == nil {
		return nil, 0
	}
	fillPasswd(pwd, &cpwd)
	return pwd, 0
}

func getpwnam(name string, pwd *Passwd, buf []byte) (*Passwd, syscall.Errno) {
	var cpwd C.struct_passwd
	var result *C.struct_passwd

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	p, n := cBuf(buf)
	rv := C.my_getpwnam_r(cname, &cpwd, p, n, &result)
	if rv != 0 {
		return nil, syscall.Errno(rv)
	}
	if result == nil {
		return nil, 0
	}
	fillPasswd(pwd, &cpwd)
	return pwd, 0
}

func getgrgid(gid sys.GroupID, grp *Group, buf []byte) (*Group, syscall.Errno) {
	var cgrp C.struct_group
	var result *C.struct_group

	p, n := cBuf(buf)
	rv := C.my_getgrgid_r(C.uint(gid), &cgrp, p, n, &result)
	if rv != 0 {
		return nil, syscall.Errno(rv)
	}
	if result == nil {
		return nil, 0
	}
	fillGroup(grp, &cgrp)
	return grp, 0
}

func getgrnam(name string, grp *Group, buf []byte) (*Group, syscall.Errno) {
	var cgrp C.struct_group
	var result *C.struct_group

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	p, n := cBuf(buf)
	rv := C.my_getgrnam_r(cname, &cgrp, p, n, &result)
	if rv != 0 {
		return nil, syscall.Errno(rv)
	}
	if result == nil {
		return nil, 0
	}
	fillGroup(grp, &cgrp)
	return grp, 0
}
