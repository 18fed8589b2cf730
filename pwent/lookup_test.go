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

package pwent_test

import (
	. "gopkg.in/check.v1"

	"github.com/getentlib/getent/pwent"
	"github.com/getentlib/getent/sys"
	"github.com/getentlib/getent/testutil"
)

type lookupSuite struct {
	testutil.BaseTest
}

var _ = Suite(&lookupSuite{})

func (s *lookupSuite) TestLookupUID(c *C) {
	pwd, err := pwent.LookupUID(0)
	c.Assert(err, IsNil)
	c.Check(pwd.Name, Equals, "root")
}

func (s *lookupSuite) TestLookupUIDNotFound(c *C) {
	_, err := pwent.LookupUID(noSuchID)
	c.Assert(err, testutil.ErrorIs, pwent.ErrNotFound)
}

func (s *lookupSuite) TestLookupName(c *C) {
	pwd, err := pwent.LookupName("root")
	c.Assert(err, IsNil)
	c.Check(pwd.UID, Equals, sys.UserID(0))
}

func (s *lookupSuite) TestLookupNameNotFound(c *C) {
	_, err := pwent.LookupName("no-such-user-xyzzy")
	c.Assert(err, testutil.ErrorIs, pwent.ErrNotFound)
}

func (s *lookupSuite) TestLookupGID(c *C) {
	grp, err := pwent.LookupGID(0)
	c.Assert(err, IsNil)
	c.Check(grp.GID, Equals, sys.GroupID(0))
}

func (s *lookupSuite) TestLookupGroupNotFound(c *C) {
	_, err := pwent.LookupGroup("no-such-group-xyzzy")
	c.Assert(err, testutil.ErrorIs, pwent.ErrNotFound)
}
