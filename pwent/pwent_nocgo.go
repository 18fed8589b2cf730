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

package pwent

import (
	"bufio"
	"errors"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/getentlib/getent/sys"
)

// Without cgo there is no libc to delegate to, so the database files
// are read directly. Each call opens, scans and closes the file on its
// own, touching no shared state, which makes this strategy reentrant
// by construction. The caller's scratch buffer backs the line scanner:
// a database line that doesn't fit reports ERANGE, same as the
// reentrant strategy would, and the caller resizes and reissues.
//
// NSS sources other than the files are not consulted in this
// configuration.

var (
	passwdFile = "/etc/passwd"
	groupFile  = "/etc/group"
)

func getpwuid(uid sys.UserID, pwd *Passwd, buf []byte) (*Passwd, syscall.Errno) {
	return scanPasswd(pwd, buf, func(p *Passwd) bool { return p.UID == uid })
}

func getpwnam(name string, pwd *Passwd, buf []byte) (*Passwd, syscall.Errno) {
	return scanPasswd(pwd, buf, func(p *Passwd) bool { return p.Name == name })
}

func getgrgid(gid sys.GroupID, grp *Group, buf []byte) (*Group, syscall.Errno) {
	return scanGroup(grp, buf, func(g *Group) bool { return g.GID == gid })
}

func getgrnam(name string, grp *Group, buf []byte) (*Group, syscall.Errno) {
	return scanGroup(grp, buf, func(g *Group) bool { return g.Name == name })
}

func scanPasswd(pwd *Passwd, buf []byte, match func(*Passwd) bool) (*Passwd, syscall.Errno) {
	f, errno := openDB(passwdFile)
	if errno != 0 {
		return nil, errno
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(buf, len(buf))
	for scanner.Scan() {
		if !parsePasswdLine(scanner.Text(), pwd) {
			continue
		}
		if match(pwd) {
			return pwd, 0
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, scanErrno(err)
	}
	return nil, 0
}

func scanGroup(grp *Group, buf []byte, match func(*Group) bool) (*Group, syscall.Errno) {
	f, errno := openDB(groupFile)
	if errno != 0 {
		return nil, errno
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(buf, len(buf))
	for scanner.Scan() {
		if !parseGroupLine(scanner.Text(), grp) {
			continue
		}
		if match(grp) {
			return grp, 0
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, scanErrno(err)
	}
	return nil, 0
}

// parsePasswdLine parses one name:passwd:uid:gid:gecos:dir:shell line;
// malformed and comment lines are skipped rather than treated as
// errors, which is what the platform's own files backend does.
func parsePasswdLine(line string, pwd *Passwd) bool {
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}
	fields := strings.Split(line, ":")
	if len(fields) != 7 {
		return false
	}
	uid, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return false
	}
	gid, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil {
		return false
	}
	pwd.Name = fields[0]
	pwd.Passwd = fields[1]
	pwd.UID = sys.UserID(uid)
	pwd.GID = sys.GroupID(gid)
	pwd.Gecos = fields[4]
	pwd.Dir = fields[5]
	pwd.Shell = fields[6]
	return true
}

// parseGroupLine parses one name:passwd:gid:member,member line.
func parseGroupLine(line string, grp *Group) bool {
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}
	fields := strings.Split(line, ":")
	if len(fields) != 4 {
		return false
	}
	gid, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return false
	}
	grp.Name = fields[0]
	grp.Passwd = fields[1]
	grp.GID = sys.GroupID(gid)
	if fields[3] == "" {
		grp.Members = nil
	} else {
		grp.Members = strings.Split(fields[3], ",")
	}
	return true
}

func openDB(path string) (*os.File, syscall.Errno) {
	f, err := os.Open(path)
	if err != nil {
		return nil, scanErrno(err)
	}
	return f, 0
}

// scanErrno maps an I/O error onto the platform error code slot of the
// lookup contract. A line that exceeds the caller's buffer is the
// caller's sizing error, same as ERANGE from getpwuid_r.
func scanErrno(err error) syscall.Errno {
	if errors.Is(err, bufio.ErrTooLong) {
		return syscall.ERANGE
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return syscall.EIO
}

func sysBufferSize() int {
	return defaultBufferSize
}
