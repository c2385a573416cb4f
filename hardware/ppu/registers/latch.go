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

package registers

import (
	"fmt"

	"github.com/jetsetilly/famicore/bits"
)

// Latch is a register that is written to twice. The first write sets the
// first half of the latch and the second write sets the second half. The
// phase alternates with every write.
type Latch struct {
	First  uint8
	Second uint8

	// the next write is to the second half
	second bool
}

func (l Latch) String() string {
	phase := "first"
	if l.second {
		phase = "second"
	}
	return fmt.Sprintf("%02x %02x (next %s)", l.First, l.Second, phase)
}

// Write value to the next half of the latch.
func (l *Latch) Write(v uint8) {
	if l.second {
		l.Second = v
	} else {
		l.First = v
	}
	l.second = !l.second
}

// Complete returns true if the most recent write was to the second half.
func (l Latch) Complete() bool {
	return !l.second
}

// ResetPhase makes the next write a write to the first half. The values in
// the latch are unchanged.
func (l *Latch) ResetPhase() {
	l.second = false
}

// Word returns the latch as a 16 bit value. The first half is the high byte.
func (l Latch) Word() uint16 {
	return bits.Word(l.Second, l.First)
}

// Load a 16 bit value into the latch. The high byte is placed in the first
// half. The phase is unchanged.
func (l *Latch) Load(v uint16) {
	l.First, l.Second = bits.Split(v)
}
