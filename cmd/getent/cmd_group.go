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
		short = "Look up a group database entry"
		long  = "The group command looks up one group by numeric id or by name."
	)

	addCommandBuilder(func(parser *flags.Parser) {
		if _, err := parser.AddCommand("group", short, long, &cmdGroup{}); err != nil {
			panic(err)
		}
	})
}

type cmdGroup struct {
	Positional struct {
		Key string `positional-arg-name:"<gid-or-name>" required:"yes"`
	} `positional-args:"yes"`
}

type groupEntry struct {
	Name    string   `yaml:"name"`
	GID     uint32   `yaml:"gid"`
	Members []string `yaml:"members,omitempty"`
}

func (c *cmdGroup) Execute([]string) error {
	key := c.Positional.Key

	var grp *pwent.Group
	var err error
	if gid, numErr := strconv.ParseUint(key, 10, 32); numErr == nil {
		logger.Debugf("looking up group id %s", key)
		grp, err = pwent.LookupGID(sys.GroupID(gid))
	} else {
		logger.Debugf("looking up group %q", key)
		grp, err = pwent.LookupGroup(key)
	}
	if err != nil {
		return err
	}

	return outputYAML(&groupEntry{
		Name:    grp.Name,
		GID:     uint32(grp.GID),
		Members: grp.Members,
	})
}
