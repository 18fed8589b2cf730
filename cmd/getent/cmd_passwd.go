// -*- Mode: Go; indent-tabs-mode: t -*-

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

package main

import (
	"strconv"

	"github.com/jessevdk/go-flags"

	"github.com/getentlib/getent/logger"
	"github.com/getentlib/getent/pwent"
	"github.com/getentlib/getent/sys"
)

func init() {
	const (
		short = "Look up a user database entry"
		long  = "The passwd command looks up one user by numeric id or by login name."
	)

	addCommandBuilder(func(parser *flags.Parser) {
		if _, err := parser.AddCommand("passwd", short, long, &cmdPasswd{}); err != nil {
			panic(err)
		}
	})
}

type cmdPasswd struct {
	Positional struct {
		Key string `positional-arg-name:"<uid-or-name>" required:"yes"`
	} `positional-args:"yes"`
}

type passwdEntry struct {
	Name  string `yaml:"name"`
	UID   uint32 `yaml:"uid"`
	GID   uint32 `yaml:"gid"`
	Gecos string `yaml:"gecos,omitempty"`
	Dir   string `yaml:"dir"`
	Shell string `yaml:"shell"`
}

func (c *cmdPasswd) Execute([]string) error {
	key := c.Positional.Key

	var pwd *pwent.Passwd
	var err error
	if uid, numErr := strconv.ParseUint(key, 10, 32); numErr == nil {
		logger.Debugf("looking up user id %s", key)
		pwd, err = pwent.LookupUID(sys.UserID(uid))
	} else {
		logger.Debugf("looking up user %q", key)
		pwd, err = pwent.LookupName(key)
	}
	if err != nil {
		return err
	}

	return outputYAML(&passwdEntry{
		Name:  pwd.Name,
		UID:   uint32(pwd.UID),
		GID:   uint32(pwd.GID),
		Gecos: pwd.Gecos,
		Dir:   pwd.Dir,
		Shell: pwd.Shell,
	})
}
