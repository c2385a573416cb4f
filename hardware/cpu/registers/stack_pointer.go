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
)

// StackTop is the initial value of the stack pointer. The top of page one.
const StackTop = uint16(0x01ff)

// StackPointer is a 16 bit counter used as a descending index into memory.
// Values are pushed by writing to the current address and then decrementing
// the pointer. Values are pulled by incrementing the pointer and then reading
// the address.
type StackPointer struct {
	value uint16
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer.
func NewStackPointer(val uint16) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%04x", sp.value)
}

// Address returns the address the next push will be written to.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Value returns the low byte of the stack pointer. This is the value
// transferred to the X register by the TSX instruction.
func (sp StackPointer) Value() uint8 {
	return uint8(sp.value)
}

// Load a value into the stack pointer.
func (sp *StackPointer) Load(val uint16) {
	sp.value = val
}

// Push returns the address to write to and then decrements the pointer.
func (sp *StackPointer) Push() uint16 {
	a := sp.value
	sp.value--
	return a
}

// Pull increments the pointer and then returns the address to read from.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.value
}
