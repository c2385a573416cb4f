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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/famicore/hardware/cpu/execution"
	"github.com/jetsetilly/famicore/hardware/cpu/instructions"
	"github.com/jetsetilly/famicore/test"
)

func TestOperand(t *testing.T) {
	r := execution.Result{
		Address:         0x8000,
		Defn:            instructions.Lookup(0xa9),
		ByteCount:       2,
		InstructionData: 0x10,
		Cycles:          2,
		Final:           true,
	}
	test.ExpectEquality(t, r.Operand(), "#$10")
	test.ExpectEquality(t, r.String(), "0x8000\tLDA\t#$10\t[2]")
	test.ExpectSuccess(t, r.IsValid())

	r.Defn = instructions.Lookup(0xb1)
	test.ExpectEquality(t, r.Operand(), "($10),Y")
	test.ExpectFailure(t, r.IsValid())

	r.Defn = instructions.Lookup(0xbd)
	r.ByteCount = 3
	r.InstructionData = 0x0200
	test.ExpectEquality(t, r.Operand(), "$0200,X")

	// branch operands are shown as the target address
	r.Defn = instructions.Lookup(0xd0)
	r.ByteCount = 2
	r.InstructionData = 0xfe
	test.ExpectEquality(t, r.Operand(), "$8000")

	r.Defn = instructions.Lookup(0x0a)
	r.ByteCount = 1
	test.ExpectEquality(t, r.Operand(), "A")

	r.Final = false
	test.ExpectFailure(t, r.IsValid())
}
