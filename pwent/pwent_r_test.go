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
	"fmt"
	"syscall"

	. "gopkg.in/check.v1"
	"gopkg.in/tomb.v2"

	"github.com/getentlib/getent/pwent"
	"github.com/getentlib/getent/sys"
	"github.com/getentlib/getent/testutil"
)

// These properties hold only for the strategies that honour the
// caller's buffer; the legacy strategy keeps its own static storage
// and its thread-safety is whatever the platform promises.

type reentrantSuite struct {
	testutil.BaseTest
}

var _ = Suite(&reentrantSuite{})

func (s *reentrantSuite) TestGetpwuidUndersizedBuffer(c *C) {
	var pwd pwent.Passwd
	result, errno := pwent.Getpwuid(0, &pwd, make([]byte, 1))
	// never a partially populated record
	c.Check(result, IsNil)
	c.Check(errno, Equals, syscall.ERANGE)
}

func (s *reentrantSuite) TestGetgrgidUndersizedBuffer(c *C) {
	var grp pwent.Group
	result, errno := pwent.Getgrgid(0, &grp, make([]byte, 1))
	c.Check(result, IsNil)
	c.Check(errno, Equals, syscall.ERANGE)
}

func (s *reentrantSuite) TestConcurrentLookups(c *C) {
	const workers = 16

	var tmb tomb.Tomb
	for i := 0; i < workers; i++ {
		i := i
		tmb.Go(func() error {
			for iter := 0; iter < 50; iter++ {
				var pwd pwent.Passwd
				result, errno := pwent.Getpwuid(0, &pwd, make([]byte, pwent.BufferSize()))
				if errno != 0 {
					return fmt.Errorf("worker %d: unexpected errno %v", i, errno)
				}
				if result == nil {
					return fmt.Errorf("worker %d: root disappeared", i)
				}
				if pwd.Name != "root" || pwd.UID != sys.UserID(0) {
					return fmt.Errorf("worker %d: got someone else's result: %+v", i, pwd)
				}

				// a distinct missing id per worker must stay missing
				var missing pwent.Passwd
				result, errno = pwent.Getpwuid(sys.UserID(noSuchID+i), &missing, make([]byte, pwent.BufferSize()))
				if errno != 0 || result != nil {
					return fmt.Errorf("worker %d: phantom entry for missing id: %v %v", i, result, errno)
				}
			}
			return nil
		})
	}
	c.Assert(tmb.Wait(), IsNil)
}
