// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package logger

// Permission is consulted before a new entry is added to the log. Emulation
// components implement it so that logging can be silenced per instance.
type Permission interface {
	AllowLogging() bool
}

type permission bool

func (p permission) AllowLogging() bool {
	return bool(p)
}

// Allow is the Permission used by code that always logs.
var Allow Permission = permission(true)

// Deny is a Permission that never logs.
var Deny Permission = permission(false)
