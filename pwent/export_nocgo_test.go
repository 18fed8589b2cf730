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

// MockDatabaseFiles points the no-cgo strategy at alternate passwd and
// group files.
func MockDatabaseFiles(passwd, group string) (restore func()) {
	oldPasswd, oldGroup := passwdFile, groupFile
	passwdFile, groupFile = passwd, group
	return func() {
		passwdFile, groupFile = oldPasswd, oldGroup
	}
}
