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

package test

import "strings"

// CompareWriter captures everything written to it so that output can be
// checked against an expected string.
type CompareWriter struct {
	sb strings.Builder
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (int, error) {
	return cw.sb.Write(p)
}

// Clear discards captured output.
func (cw *CompareWriter) Clear() {
	cw.sb.Reset()
}

// Compare returns true if captured output is exactly s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.sb.String() == s
}

// Lines returns captured output split into lines. A trailing newline does
// not produce an empty final line.
func (cw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(cw.sb.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (cw *CompareWriter) String() string {
	return cw.sb.String()
}
