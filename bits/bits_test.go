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

package bits_test

import (
	"testing"

	"github.com/jetsetilly/famicore/bits"
	"github.com/jetsetilly/famicore/test"
)

func TestBit(t *testing.T) {
	test.ExpectSuccess(t, bits.Bit(0b0000_0001, 0))
	test.ExpectSuccess(t, bits.Bit(0b0000_0010, 1))
	test.ExpectFailure(t, bits.Bit(0b0000_0001, 1))
	test.ExpectSuccess(t, bits.Bit(0b1000_0000, 7))
}

func TestSet(t *testing.T) {
	test.ExpectEquality(t, bits.Set(0b0000_1000, 6, true), 0b0100_1000)
	test.ExpectEquality(t, bits.Set(0b1111_1111, 6, false), 0b1011_1111)

	// every byte and every bit position
	for v := 0; v <= 0xff; v++ {
		b := uint8(v)
		for n := 0; n < 8; n++ {
			on := bits.Set(b, n, true)
			off := bits.Set(b, n, false)
			test.DemandEquality(t, bits.Bit(on, n), true, v, n)
			test.DemandEquality(t, bits.Bit(off, n), false, v, n)

			// unrelated bits are unchanged
			mask := ^uint8(1 << n)
			test.DemandEquality(t, on&mask, b&mask, v, n)
			test.DemandEquality(t, off&mask, b&mask, v, n)
		}
	}
}

func TestNibbles(t *testing.T) {
	hi, lo := bits.Nibbles(0xa9)
	test.ExpectEquality(t, hi, 0x0a)
	test.ExpectEquality(t, lo, 0x09)
}

func TestWord(t *testing.T) {
	test.ExpectEquality(t, bits.Word(0x34, 0x12), 0x1234)
	hi, lo := bits.Split(0x8002)
	test.ExpectEquality(t, hi, 0x80)
	test.ExpectEquality(t, lo, 0x02)
}
