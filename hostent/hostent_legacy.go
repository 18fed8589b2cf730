// -*- Mode: Go; indent-tabs-mode: t -*-
//go:build cgo && unix && (getent_legacy || (!linux && !solaris))

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

// Legacy strategy: plain gethostbyname. On the platforms that land
// here the legacy form is as thread-safe as the platform makes it
// (Darwin and the BSDs keep the result and h_errno in thread-local
// storage); the wrapper adds no shared state of its own.
//
// h_errno is only valid in the instant after the call returns, before
// anything else can overwrite it, so the call and the read stay
// together inside one C shim. Per the POSIX-draft behaviour being
// mimicked, the indicator is captured on success and the caller's
// slot is left untouched on failure.

/*
#include <netdb.h>
#include <stdlib.h>

static struct hostent *my_gethostbyname(const char *name, int *h_errnop, int *have_herrno) {
	struct hostent *r;
	r = gethostbyname(name);
	if (r != NULL) {
		*h_errnop = h_errno;
		*have_herrno = 1;
	} else {
		*have_herrno = 0;
	}
	return r;
}
*/
import "C"

import (
	"unsafe"
)

func gethostbyname(name string, hent *Hostent, buf []byte, herrno *HErrno) (*Hostent, int) {
	// the legacy form keeps its own storage
	_ = buf

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var cherrno, have C.int
	result := C.my_gethostbyname(cname, &cherrno, &have)
	if result == nil {
		return nil, lookupFailed
	}
	if herrno != nil && have != 0 {
		*herrno = HErrno(cherrno)
	}
	fillHostent(hent, result)
	return hent, 0
}
