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

package hostent_test

import (
	. "gopkg.in/check.v1"

	"github.com/getentlib/getent/hostent"
	"github.com/getentlib/getent/testutil"
)

type legacySuite struct {
	testutil.BaseTest
}

var _ = Suite(&legacySuite{})

func (s *legacySuite) TestUnresolvableLeavesHErrnoUnset(c *C) {
	var hent hostent.Hostent
	// sentinel value to prove the slot is left alone on failure
	herrno := hostent.HErrno(-42)
	result, status := hostent.Gethostbyname("no-such-host-xyzzy.invalid", &hent, make([]byte, 4096), &herrno)
	c.Check(result, IsNil)
	c.Check(status, Not(Equals), 0)
	c.Check(herrno, Equals, hostent.HErrno(-42))
}
