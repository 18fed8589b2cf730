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

package pwent

/*
#include <unistd.h>
#include <sys/types.h>
#include <pwd.h>
#include <grp.h>
*/
import "C"

import (
	"unsafe"

	"github.com/getentlib/getent/sys"
)

// fillPasswd copies the fields of c into the caller's record. The
// copies are taken while c's backing storage is still known-valid, so
// the record is self-contained once the wrapper returns.
func fillPasswd(pwd *Passwd, c *C.struct_passwd) {
	pwd.Name = C.GoString(c.pw_name)
	pwd.Passwd = C.GoString(c.pw_passwd)
	pwd.UID = sys.UserID(c.pw_uid)
	pwd.GID = sys.GroupID(c.pw_gid)
	pwd.Gecos = C.GoString(c.pw_gecos)
	pwd.Dir = C.GoString(c.pw_dir)
	pwd.Shell = C.GoString(c.pw_shell)
}

func fillGroup(grp *Group, c *C.struct_group) {
	grp.Name = C.GoString(c.gr_name)
	grp.Passwd = C.GoString(c.gr_passwd)
	grp.GID = sys.GroupID(c.gr_gid)
	grp.Members = cStringList(c.gr_mem)
}

// cStringList copies a NULL-terminated char* vector into a Go slice.
func cStringList(p **C.char) []string {
	if p == nil {
		return nil
	}
	var out []string
	for q := p; *q != nil; q = (**C.char)(unsafe.Pointer(uintptr(unsafe.Pointer(q)) + unsafe.Sizeof(*q))) {
		out = append(out, C.GoString(*q))
	}
	return out
}

// cBuf hands the caller's scratch buffer to C, unchanged. A nil
// pointer with zero length is fine: the platform call reports ERANGE
// through the usual channel.
func cBuf(buf []byte) (*C.char, C.size_t) {
	if len(buf) == 0 {
		return nil, 0
	}
	return (*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf))
}

func sysBufferSize() int {
	n := C.sysconf(C._SC_GETPW_R_SIZE_MAX)
	if n <= 0 || n > 1<<20 {
		return defaultBufferSize
	}
	return int(n)
}
