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

// Package bits contains the single bit and byte splitting helpers used
// throughout the emulation.
package bits

// Bit returns the state of bit n of v. Bit zero is the least significant bit.
func Bit(v uint8, n int) bool {
	return v&(1<<n) == 1<<n
}

// Set returns v with bit n set to state. Other bits are unchanged.
func Set(v uint8, n int, state bool) uint8 {
	if state {
		return v | (1 << n)
	}
	return v &^ (1 << n)
}

// Nibbles splits v into its high and low 4 bit values.
func Nibbles(v uint8) (hi uint8, lo uint8) {
	return v >> 4, v & 0x0f
}

// Split divides a 16 bit value into its high and low bytes.
func Split(v uint16) (hi uint8, lo uint8) {
	return uint8(v >> 8), uint8(v)
}

// Word composes a 16 bit value from a low and high byte. The argument order
// follows the order the bytes are found in memory.
func Word(lo uint8, hi uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}
