// -*- Mode: Go; indent-tabs-mode: t -*-
//go:build cgo && linux && !getent_legacy

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

package hostent

/*
#include <netdb.h>
#include <stdlib.h>

static int my_gethostbyname_r(const char *name, struct hostent *ret,
	char *buf, size_t buflen, struct hostent **result, int *h_errnop) {
	return gethostbyname_r(name, ret, buf, buflen, result, h_errnop);
}
*/
import "C"

import (
	"unsafe"
)

// glibc's gethostbyname_r returns an int status and reports the
// result pointer and h_errno through output arguments. The status
// value's meaning is not portable, so success and failure are judged
// by the result pointer alone and the status is normalized.

func gethostbyname(name string, hent *Hostent, buf []byte, herrno *HErrno) (*Hostent, int) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var chent C.struct_hostent
	var result *C.struct_hostent
	var cherrno C.int

	p, n := cBuf(buf)
	C.my_gethostbyname_r(cname, &chent, p, n, &result, &cherrno)
	if herrno != nil {
		*herrno = HErrno(cherrno)
	}
	if result == nil {
		return nil, lookupFailed
	}
	fillHostent(hent, &chent)
	return hent, 0
}
