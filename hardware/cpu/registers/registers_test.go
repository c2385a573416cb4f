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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/cpu/registers"
	"github.com/jetsetilly/famicore/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Label(), "test")

	// add with carry
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(1))
	test.ExpectFailure(t, carry)
	test.ExpectFailure(t, overflow)

	r8.Load(0xff)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0))
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	// signed overflow
	r8.Load(0x7f)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x80))
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)
	test.ExpectSuccess(t, r8.IsNegative())

	// subtract with borrow
	r8.Load(0x05)
	carry, overflow = r8.Subtract(0x03, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x02))
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)

	r8.Load(0x03)
	carry, _ = r8.Subtract(0x05, true)
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	test.ExpectFailure(t, carry)

	r8.Load(0x80)
	carry, overflow = r8.Subtract(0x01, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x7f))
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, overflow)

	// compare
	r8.Load(0x10)
	carry, res := r8.Compare(0x10)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, res, uint8(0))
	carry, res = r8.Compare(0x11)
	test.ExpectFailure(t, carry)
	test.ExpectEquality(t, res, uint8(0xff))

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	r8.ORA(0x01)
	test.ExpectEquality(t, r8.Value(), uint8(0xff))

	// shifts and rotates
	r8.Load(0x81)
	test.ExpectSuccess(t, r8.ASL())
	test.ExpectEquality(t, r8.Value(), uint8(0x02))
	test.ExpectFailure(t, r8.LSR())
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	test.ExpectSuccess(t, r8.LSR())
	test.ExpectEquality(t, r8.Value(), uint8(0x00))

	r8.Load(0x80)
	test.ExpectSuccess(t, r8.ROL(true))
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	test.ExpectSuccess(t, r8.ROR(false))
	test.ExpectEquality(t, r8.Value(), uint8(0x00))
	test.ExpectFailure(t, r8.ROR(true))
	test.ExpectEquality(t, r8.Value(), uint8(0x80))
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), uint16(0))

	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), uint16(2))

	pc.Load(0xffff)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), uint16(0))

	pc.Load(0x8010)
	pc.Relative(0xfe)
	test.ExpectEquality(t, pc.Address(), uint16(0x800e))
	pc.Relative(0x10)
	test.ExpectEquality(t, pc.Address(), uint16(0x801e))
	test.ExpectEquality(t, pc.String(), "801e")
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(registers.StackTop)
	test.ExpectEquality(t, sp.Push(), uint16(0x01ff))
	test.ExpectEquality(t, sp.Push(), uint16(0x01fe))
	test.ExpectEquality(t, sp.Address(), uint16(0x01fd))
	test.ExpectEquality(t, sp.Value(), uint8(0xfd))
	test.ExpectEquality(t, sp.Pull(), uint16(0x01fe))
	test.ExpectEquality(t, sp.Pull(), uint16(0x01ff))
	test.ExpectEquality(t, sp.Address(), registers.StackTop)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.Value(), uint8(0x20))
	test.ExpectEquality(t, sr.String(), "nv-bdizc")

	// every value survives a round trip with the reserved bit forced
	for v := 0; v <= 0xff; v++ {
		sr.Load(uint8(v))
		test.ExpectEquality(t, sr.Value(), uint8(v)|0x20)
	}

	sr.Reset()
	test.ExpectSuccess(t, sr.Set(registers.Sign, true))
	test.ExpectSuccess(t, sr.Set(registers.Carry, true))
	test.ExpectSuccess(t, sr.Set(registers.InterruptDisable, true))
	test.ExpectEquality(t, sr.String(), "Nv-bdIzC")
	test.ExpectEquality(t, sr.Value(), uint8(0xa5))
	test.ExpectSuccess(t, sr.Flag(registers.Sign))
	test.ExpectFailure(t, sr.Flag(registers.Zero))

	// reserved flag cannot be changed
	err := sr.Set(registers.Reserved, false)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, registers.ReservedFlag))
	test.ExpectSuccess(t, sr.Flag(registers.Reserved))
	test.ExpectEquality(t, sr.Value(), uint8(0xa5))
}
