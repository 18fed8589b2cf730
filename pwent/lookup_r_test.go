// -*- Mode: Go; indent-tabs-mode: t -*-
//go:build unix && !getent_legacy

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

package pwent_test

import (
	. "gopkg.in/check.v1"

	"github.com/getentlib/getent/pwent"
)

type lookupResizeSuite struct{}

var _ = Suite(&lookupResizeSuite{})

func (s *lookupResizeSuite) TestLookupGrowsBuffer(c *C) {
	// start far too small and let the helper double its way up
	restore := pwent.MockBufferSize(32)
	defer restore()

	pwd, err := pwent.LookupUID(0)
	c.Assert(err, IsNil)
	c.Check(pwd.Name, Equals, "root")
}
