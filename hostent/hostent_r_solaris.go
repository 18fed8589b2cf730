// -*- Mode: Go; indent-tabs-mode: t -*-
//go:build cgo && solaris && !getent_legacy

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
#cgo solaris LDFLAGS: -lsocket -lnsl
#include <netdb.h>
#include <stdlib.h>

static struct hostent *my_gethostbyname_r(const char *name, struct hostent *ret,
	char *buf, int buflen, int *h_errnop) {
	return gethostbyname_r(name, ret, buf, buflen, h_errnop);
}
*/
import "C"

import (
	"unsafe"
)

// Solaris kept the early POSIX draft gethostbyname_r, which returns
// the record pointer directly instead of a status. Same normalization
// as everywhere else: the pointer decides, non-NULL is 0 and NULL is
// the failure sentinel.

func gethostbyname(name string, hent *Hostent, buf []byte, herrno *HErrno) (*Hostent, int) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var chent C.struct_hostent
	var cherrno C.int

	p, n := cBuf(buf)
	result := C.my_gethostbyname_r(cname, &chent, p, C.int(n), &cherrno)
	if herrno != nil {
		*herrno = HErrno(cherrno)
	}
	if result == nil {
		return nil, lookupFailed
	}
	fillHostent(hent, result)
	return hent, 0
}
