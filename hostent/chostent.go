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

package hostent

/*
#include <netdb.h>
*/
import "C"

import (
	"unsafe"

	"github.com/getentlib/getent/sys"
)

// failure sentinel for the normalized status; the underlying
// convention's own failure detail does not survive normalization
const lookupFailed = -1

// fillHostent copies the fields of c into the caller's record while
// c's backing storage is still known-valid.
func fillHostent(hent *Hostent, c *C.struct_hostent) {
	hent.Name = C.GoString(c.h_name)
	hent.AddrType = sys.AddrFamily(c.h_addrtype)
	hent.Aliases = nil
	for q := c.h_aliases; q != nil && *q != nil; q = next(q) {
		hent.Aliases = append(hent.Aliases, C.GoString(*q))
	}
	hent.Addrs = nil
	for q := c.h_addr_list; q != nil && *q != nil; q = next(q) {
		hent.Addrs = append(hent.Addrs, C.GoBytes(unsafe.Pointer(*q), c.h_length))
	}
}

func next(q **C.char) **C.char {
	return (**C.char)(unsafe.Pointer(uintptr(unsafe.Pointer(q)) + unsafe.Sizeof(*q)))
}

func cBuf(buf []byte) (*C.char, C.size_t) {
	if len(buf) == 0 {
		return nil, 0
	}
	return (*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf))
}
