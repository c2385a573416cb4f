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
	"strings"

	"github.com/jetsetilly/famicore/curated"
)

// Sentinel error pattern for an attempt to change the reserved bit.
const ReservedFlag = "status register: reserved flag cannot be changed"

// Flag identifies a single bit of the status register. The value of the Flag
// is the bit position in the status byte.
type Flag int

// List of status flags.
const (
	Carry            Flag = 0
	Zero             Flag = 1
	InterruptDisable Flag = 2
	DecimalMode      Flag = 3
	Break            Flag = 4
	Reserved         Flag = 5
	Overflow         Flag = 6
	Sign             Flag = 7
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU. The reserved bit is not stored. It is always on.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(f bool, on rune, off rune) {
		if f {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(sr.Sign, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Flag returns the state of a single flag. The Reserved flag is always true.
func (sr StatusRegister) Flag(f Flag) bool {
	switch f {
	case Carry:
		return sr.Carry
	case Zero:
		return sr.Zero
	case InterruptDisable:
		return sr.InterruptDisable
	case DecimalMode:
		return sr.DecimalMode
	case Break:
		return sr.Break
	case Overflow:
		return sr.Overflow
	case Sign:
		return sr.Sign
	}
	return true
}

// Set the state of a single flag. Returns an error if the flag is the Reserved
// flag.
func (sr *StatusRegister) Set(f Flag, state bool) error {
	switch f {
	case Carry:
		sr.Carry = state
	case Zero:
		sr.Zero = state
	case InterruptDisable:
		sr.InterruptDisable = state
	case DecimalMode:
		sr.DecimalMode = state
	case Break:
		sr.Break = state
	case Overflow:
		sr.Overflow = state
	case Sign:
		sr.Sign = state
	default:
		return curated.Errorf(ReservedFlag)
	}
	return nil
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack. The reserved bit is always set.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v | 0x20
}

// Load converts an 8 bit value (taken from the stack, for example) to the
// StatusRegister struct receiver. The reserved bit of the value is ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.Break = v&0x10 == 0x10
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
