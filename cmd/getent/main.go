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
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v2"

	"github.com/getentlib/getent/logger"
)

var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr

	opts struct{}
)

const (
	shortHelp = "Query the system user, group and host databases"
	longHelp  = `
getent looks up entries in the system user, group and host databases
through the library's reentrant wrappers and prints whatever comes
back as YAML.
`
)

var commandBuilders []func(*flags.Parser)

func addCommandBuilder(f func(*flags.Parser)) {
	commandBuilders = append(commandBuilders, f)
}

// Parser returns a fresh parser with all the commands attached.
func Parser() *flags.Parser {
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.ShortDescription = shortHelp
	parser.LongDescription = longHelp
	for _, builder := range commandBuilders {
		builder(parser)
	}
	return parser
}

func init() {
	if err := logger.SimpleSetup(); err != nil {
		fmt.Fprintf(Stderr, "WARNING: failed to activate logging: %v\n", err)
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	_, err := Parser().ParseArgs(args)
	return err
}

func outputYAML(v interface{}) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = Stdout.Write(out)
	return err
}
