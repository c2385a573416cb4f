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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/famicore/hardware/cpu/instructions"
	"github.com/jetsetilly/famicore/test"
)

func TestOperandLength(t *testing.T) {
	test.ExpectEquality(t, instructions.Implied.Bytes(), 0)
	test.ExpectEquality(t, instructions.Accumulator.Bytes(), 0)
	test.ExpectEquality(t, instructions.Immediate.Bytes(), 1)
	test.ExpectEquality(t, instructions.Relative.Bytes(), 1)
	test.ExpectEquality(t, instructions.ZeroPage.Bytes(), 1)
	test.ExpectEquality(t, instructions.ZeroPageIndexedX.Bytes(), 1)
	test.ExpectEquality(t, instructions.ZeroPageIndexedY.Bytes(), 1)
	test.ExpectEquality(t, instructions.IndexedIndirect.Bytes(), 1)
	test.ExpectEquality(t, instructions.IndirectIndexed.Bytes(), 1)
	test.ExpectEquality(t, instructions.Absolute.Bytes(), 2)
	test.ExpectEquality(t, instructions.AbsoluteIndexedX.Bytes(), 2)
	test.ExpectEquality(t, instructions.AbsoluteIndexedY.Bytes(), 2)
	test.ExpectEquality(t, instructions.Indirect.Bytes(), 2)
}

func TestLookup(t *testing.T) {
	d := instructions.Lookup(0xa9)
	test.ExpectEquality(t, d.Mnemonic, instructions.LDA)
	test.ExpectEquality(t, d.AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, d.Cycles, 2)
	test.ExpectEquality(t, d.Bytes(), 2)

	d = instructions.Lookup(0x20)
	test.ExpectEquality(t, d.Mnemonic, instructions.JSR)
	test.ExpectEquality(t, d.AddressingMode, instructions.Absolute)
	test.ExpectEquality(t, d.Cycles, 6)
	test.ExpectEquality(t, d.Bytes(), 3)

	d = instructions.Lookup(0x6c)
	test.ExpectEquality(t, d.Mnemonic, instructions.JMP)
	test.ExpectEquality(t, d.AddressingMode, instructions.Indirect)

	d = instructions.Lookup(0xb6)
	test.ExpectEquality(t, d.Mnemonic, instructions.LDX)
	test.ExpectEquality(t, d.AddressingMode, instructions.ZeroPageIndexedY)

	d = instructions.Lookup(0xf0)
	test.ExpectSuccess(t, d.IsBranch())

	d = instructions.Lookup(0x02)
	test.ExpectFailure(t, d.IsDefined())
	test.ExpectEquality(t, d.Mnemonic.String(), "???")
}

// the two tables must agree on which opcodes are defined
func TestTableConsistency(t *testing.T) {
	n := 0
	for op := 0; op <= 0xff; op++ {
		d := instructions.Lookup(uint8(op))
		if d.IsDefined() {
			n++
			test.ExpectInequality(t, d.Cycles, 0, d.String())
		} else {
			test.ExpectEquality(t, d.Cycles, 0, d.String())
		}
	}

	// number of official opcodes
	test.ExpectEquality(t, n, 151)

	// every mnemonic appears at least once
	seen := make(map[instructions.Mnemonic]bool)
	for op := 0; op <= 0xff; op++ {
		seen[instructions.Lookup(uint8(op)).Mnemonic] = true
	}
	for m := instructions.Undefined + 1; m < instructions.NumMnemonics; m++ {
		test.ExpectSuccess(t, seen[m], m.String())
	}
}
