// -*- Mode: Go; indent-tabs-mode: t -*-
//go:build !cgo && unix

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
	"os"
	"path/filepath"
	"syscall"

	. "gopkg.in/check.v1"

	"github.com/getentlib/getent/pwent"
	"github.com/getentlib/getent/sys"
	"github.com/getentlib/getent/testutil"
)

type nocgoSuite struct {
	testutil.BaseTest
}

var _ = Suite(&nocgoSuite{})

const mockPasswd = `root:x:0:0:root:/root:/bin/bash
# a comment, skipped
broken line without fields
daemon:x:1:1:daemon:/usr/sbin:/usr/sbin/nologin
zork:x:1000:1000:Zork Mc.Zorkface:/home/zork:/bin/zsh
`

const mockGroup = `root:x:0:
floppy:x:25:zork,daemon
`

func (s *nocgoSuite) SetUpTest(c *C) {
	s.BaseTest.SetUpTest(c)

	d := c.MkDir()
	passwd := filepath.Join(d, "passwd")
	group := filepath.Join(d, "group")
	c.Assert(os.WriteFile(passwd, []byte(mockPasswd), 0644), IsNil)
	c.Assert(os.WriteFile(group, []byte(mockGroup), 0644), IsNil)
	s.AddCleanup(pwent.MockDatabaseFiles(passwd, group))
}

func (s *nocgoSuite) TestGetpwuidFromFile(c *C) {
	var pwd pwent.Passwd
	result, errno := pwent.Getpwuid(1000, &pwd, make([]byte, 256))
	c.Assert(errno, Equals, syscall.Errno(0))
	c.Assert(result, Equals, &pwd)
	c.Check(pwd, DeepEquals, pwent.Passwd{
		Name:   "zork",
		Passwd: "x",
		UID:    1000,
		GID:    1000,
		Gecos:  "Zork Mc.Zorkface",
		Dir:    "/home/zork",
		Shell:  "/bin/zsh",
	})
}

func (s *nocgoSuite) TestGetpwnamSkipsJunkLines(c *C) {
	var pwd pwent.Passwd
	result, errno := pwent.Getpwnam("daemon", &pwd, make([]byte, 256))
	c.Assert(errno, Equals, syscall.Errno(0))
	c.Assert(result, NotNil)
	c.Check(pwd.UID, Equals, sys.UserID(1))
}

func (s *nocgoSuite) TestGetgrnamMembers(c *C) {
	var grp pwent.Group
	result, errno := pwent.Getgrnam("floppy", &grp, make([]byte, 256))
	c.Assert(errno, Equals, syscall.Errno(0))
	c.Assert(result, NotNil)
	c.Check(grp.GID, Equals, sys.GroupID(25))
	c.Check(grp.Members, DeepEquals, []string{"zork", "daemon"})
}

func (s *nocgoSuite) TestGetgrgidNoMembers(c *C) {
	var grp pwent.Group
	result, errno := pwent.Getgrgid(0, &grp, make([]byte, 256))
	c.Assert(errno, Equals, syscall.Errno(0))
	c.Assert(result, NotNil)
	c.Check(grp.Members, IsNil)
}

func (s *nocgoSuite) TestLongLineReportsERANGE(c *C) {
	var pwd pwent.Passwd
	result, errno := pwent.Getpwuid(1000, &pwd, make([]byte, 4))
	c.Check(result, IsNil)
	c.Check(errno, Equals, syscall.ERANGE)
}

func (s *nocgoSuite) TestMissingFileErrno(c *C) {
	s.AddCleanup(pwent.MockDatabaseFiles("/nonexistent/passwd", "/nonexistent/group"))

	var pwd pwent.Passwd
	result, errno := pwent.Getpwuid(0, &pwd, make([]byte, 256))
	c.Check(result, IsNil)
	c.Check(errno, Equals, syscall.ENOENT)
}
