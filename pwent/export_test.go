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

package pwent

// MockBufferSize makes BufferSize return a fixed value, so tests can
// force the Lookup helpers through their resize path.
func MockBufferSize(n int) (restore func()) {
	old := bufferSize
	bufferSize = func() int { return n }
	return func() {
		bufferSize = old
	}
}
