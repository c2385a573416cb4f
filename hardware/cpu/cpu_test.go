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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/cpu"
	"github.com/jetsetilly/famicore/hardware/memory/cpubus"
	"github.com/jetsetilly/famicore/test"
)

// mockMem is a flat 64k address space. addresses at or above readOnly can not
// be written to and addresses at or above unmapped can not be read.
type mockMem struct {
	data     [0x10000]uint8
	readOnly int
	unmapped int
}

func newMockMem() *mockMem {
	return &mockMem{
		readOnly: 0x10000,
		unmapped: 0x10000,
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if int(address) >= mem.unmapped {
		return 0, curated.Errorf(cpubus.Unimplemented, address)
	}
	return mem.data[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if int(address) >= mem.readOnly {
		return curated.Errorf(cpubus.ReadOnly, address)
	}
	mem.data[address] = data
	return nil
}

// newCPU places the program at 0x8000 and points the reset vector at it.
func newCPU(t *testing.T, program ...uint8) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	copy(mem.data[0x8000:], program)
	mem.data[cpubus.Reset] = 0x00
	mem.data[cpubus.Reset+1] = 0x80
	mc := cpu.NewCPU(mem)
	mc.Reset()
	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles, err := mc.ExecuteInstruction()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	return cycles
}

func TestReset(t *testing.T) {
	mem := newMockMem()
	mem.data[cpubus.Reset] = 0x34
	mem.data[cpubus.Reset+1] = 0x92

	mc := cpu.NewCPU(mem)
	mc.A.Load(0x10)
	mc.SP.Load(0x0100)
	mc.Reset()

	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9234))
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.X.Value(), uint8(0))
	test.ExpectEquality(t, mc.Y.Value(), uint8(0))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x01ff))
	test.ExpectEquality(t, mc.Status.Value(), uint8(0x24))
	test.ExpectEquality(t, mc.String(), "PC=9234 A=00 X=00 Y=00 SP=01ff SR=nv-bdIzc")
}

func TestResetFallback(t *testing.T) {
	mem := newMockMem()
	mem.data[cpubus.Reset] = 0x34
	mem.data[cpubus.Reset+1] = 0x92
	mem.unmapped = 0x8000

	mc := cpu.NewCPU(mem)
	mc.Reset()
	test.ExpectEquality(t, mc.PC.Address(), cpubus.DefaultEntry)
}

func TestSubroutine(t *testing.T) {
	mc, mem := newCPU(t,
		0x20, 0x34, 0x12, // JSR $1234
		0xea, // NOP
	)
	mem.data[0x1234] = 0x60 // RTS

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1234))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x01fd))

	// return address is pushed high byte first
	test.ExpectEquality(t, mem.data[0x01ff], uint8(0x80))
	test.ExpectEquality(t, mem.data[0x01fe], uint8(0x02))

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8003))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x01ff))

	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8004))
}

func TestBreak(t *testing.T) {
	mc, mem := newCPU(t,
		0x00, // BRK (ignored)
		0x58, // CLI
		0x00, // BRK
	)
	mem.data[cpubus.IRQ] = 0x00
	mem.data[cpubus.IRQ+1] = 0x90
	mem.data[0x9000] = 0x40 // RTI

	// interrupts are disabled after reset
	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8001))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x01ff))
	test.ExpectFailure(t, mc.Status.Break)

	step(t, mc)
	test.ExpectFailure(t, mc.Status.InterruptDisable)

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9000))
	test.ExpectEquality(t, mem.data[0x01ff], uint8(0x80))
	test.ExpectEquality(t, mem.data[0x01fe], uint8(0x03))
	test.ExpectEquality(t, mem.data[0x01fd], uint8(0x30))
	test.ExpectSuccess(t, mc.Status.Break)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8003))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x01ff))
	test.ExpectFailure(t, mc.Status.InterruptDisable)
}

func TestNonMaskableInterrupt(t *testing.T) {
	mc, mem := newCPU(t)
	mem.data[cpubus.NMI] = 0x00
	mem.data[cpubus.NMI+1] = 0xa0

	cycles, err := mc.NonMaskableInterrupt()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0xa000))
	test.ExpectEquality(t, mem.data[0x01ff], uint8(0x80))
	test.ExpectEquality(t, mem.data[0x01fe], uint8(0x00))

	// break flag is clear in the pushed status
	test.ExpectEquality(t, mem.data[0x01fd], uint8(0x24))
}

func TestBranches(t *testing.T) {
	mc, _ := newCPU(t,
		0xa9, 0x00, // LDA #$00
		0xf0, 0x02, // BEQ +2
		0x00, 0x00,
		0xd0, 0x02, // BNE +2 (not taken)
		0xa9, 0x01, // LDA #$01
		0xd0, 0xfc, // BNE -4
	)

	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8006))
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8008))
	step(t, mc)
	test.ExpectFailure(t, mc.Status.Zero)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8008))
	test.ExpectEquality(t, mc.LastResult.String(), "0x800a\tBNE\t$8008\t[2]")
}

func TestArithmetic(t *testing.T) {
	mc, _ := newCPU(t,
		0xa9, 0x7f, // LDA #$7f
		0x18,       // CLC
		0x69, 0x01, // ADC #$01
		0x38,       // SEC
		0xe9, 0x01, // SBC #$01
		0x38,       // SEC
		0xe9, 0x80, // SBC #$80
		0xc9, 0xff, // CMP #$ff
	)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x7f))
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Sign)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))
}

func TestAddressingModes(t *testing.T) {
	mc, mem := newCPU(t,
		0xa2, 0x02, // LDX #$02
		0xa0, 0x03, // LDY #$03
		0xb5, 0x10, // LDA $10,X
		0x8d, 0x00, 0x03, // STA $0300
		0xb1, 0x20, // LDA ($20),Y
		0x9d, 0x00, 0x03, // STA $0300,X
		0xa1, 0x1e, // LDA ($1e,X)
		0x99, 0x00, 0x03, // STA $0300,Y
		0x6c, 0x30, 0x00, // JMP ($0030)
	)
	mem.data[0x12] = 0xaa
	mem.data[0x20] = 0x00
	mem.data[0x21] = 0x04
	mem.data[0x0403] = 0xbb
	mem.data[0x30] = 0x00
	mem.data[0x31] = 0x90

	for i := 0; i < 8; i++ {
		step(t, mc)
	}

	test.ExpectEquality(t, mem.data[0x0300], uint8(0xaa))
	test.ExpectEquality(t, mem.data[0x0302], uint8(0xbb))

	// ($1e,X) uses the pointer at $20
	test.ExpectEquality(t, mem.data[0x0303], uint8(0x00))
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x9000))
}

func TestReadModifyWrite(t *testing.T) {
	mc, mem := newCPU(t,
		0x06, 0x10, // ASL $10
		0xe6, 0x11, // INC $11
		0xc6, 0x12, // DEC $12
		0x4a, // LSR A
		0x2a, // ROL A
	)
	mem.data[0x10] = 0x81
	mem.data[0x11] = 0xff
	mem.data[0x12] = 0x01

	step(t, mc)
	test.ExpectEquality(t, mem.data[0x10], uint8(0x02))
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc)
	test.ExpectEquality(t, mem.data[0x11], uint8(0x00))
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc)
	test.ExpectEquality(t, mem.data[0x12], uint8(0x00))

	mc.A.Load(0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestStack(t *testing.T) {
	mc, mem := newCPU(t,
		0xa9, 0x42, // LDA #$42
		0x48, // PHA
		0x08, // PHP
		0xa9, 0x00, // LDA #$00
		0x28, // PLP
		0x68, // PLA
		0xba, // TSX
	)

	for i := 0; i < 7; i++ {
		step(t, mc)
	}

	test.ExpectEquality(t, mem.data[0x01ff], uint8(0x42))
	test.ExpectEquality(t, mem.data[0x01fe], uint8(0x34))
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
	test.ExpectEquality(t, mc.X.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.SP.Address(), uint16(0x01ff))
}

func TestNotYetImplemented(t *testing.T) {
	mc, _ := newCPU(t, 0x02)

	cycles, err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpubus.NotYetImplemented))
	test.ExpectEquality(t, cycles, 0)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8000))
}

func TestFailedInstruction(t *testing.T) {
	mc, mem := newCPU(t,
		0xa9, 0x01, // LDA #$01
		0x8d, 0x00, 0xc0, // STA $c000
	)
	mem.readOnly = 0xc000

	step(t, mc)

	_, err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpubus.ReadOnly))

	// register file is unchanged
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x8002))
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
}
