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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the regions in
// memory along with their policy. Useful for reference.
func Summary() string {
	s := strings.Builder{}

	// look up region of first address in memory
	current, _ := Lookup(0)
	start := 0

	// for every address in memory. using an int for the loop counter because
	// a uint16 would overflow at the top of memory
	for a := 1; a <= int(Memtop); a++ {
		r, ok := Lookup(uint16(a))
		if !ok {
			r = Region{}
		}

		// if the region has changed print out the summary line
		if r != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\t%s\n", start, a-1, current, current.Policy))
			current = r
			start = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\t%s\n", start, Memtop, current, current.Policy))

	return s.String()
}
