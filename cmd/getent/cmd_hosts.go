// -*- Mode: Go; indent-tabs-mode: t -*-
//go:build cgo

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
	"fmt"
	"net"

	"github.com/jessevdk/go-flags"

	"github.com/getentlib/getent/hostent"
	"github.com/getentlib/getent/logger"
)

// The hosts command exists only in cgo builds: without cgo there is no
// libc resolver underneath and the hostent package is compiled out.

func init() {
	const (
		short = "Look up a host database entry"
		long  = "The hosts command resolves one host name through the platform's gethostbyname facility."
	)

	addCommandBuilder(func(parser *flags.Parser) {
		if _, err := parser.AddCommand("hosts", short, long, &cmdHosts{}); err != nil {
			panic(err)
		}
	})
}

type cmdHosts struct {
	Positional struct {
		Name string `positional-arg-name:"<host-name>" required:"yes"`
	} `positional-args:"yes"`
}

type hostEntry struct {
	Name      string   `yaml:"name"`
	Aliases   []string `yaml:"aliases,omitempty"`
	Family    string   `yaml:"family"`
	Addresses []string `yaml:"addresses"`
}

func (c *cmdHosts) Execute([]string) error {
	name := c.Positional.Name
	logger.Debugf("resolving host %q", name)

	var hent hostent.Hostent
	var herrno hostent.HErrno
	result, status := hostent.Gethostbyname(name, &hent, make([]byte, 4096), &herrno)
	if status != 0 {
		if herrno != 0 {
			return fmt.Errorf("cannot resolve %q: %s", name, herrno)
		}
		return fmt.Errorf("cannot resolve %q", name)
	}

	addrs := make([]string, 0, len(result.Addrs))
	for _, addr := range result.Addrs {
		addrs = append(addrs, net.IP(addr).String())
	}

	return outputYAML(&hostEntry{
		Name:      result.Name,
		Aliases:   result.Aliases,
		Family:    result.AddrType.String(),
		Addresses: addrs,
	})
}
