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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/famicore/bits"
	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/cpu/execution"
	"github.com/jetsetilly/famicore/hardware/cpu/instructions"
	"github.com/jetsetilly/famicore/hardware/cpu/registers"
	"github.com/jetsetilly/famicore/hardware/memory/cpubus"
	"github.com/jetsetilly/famicore/logger"
)

// the number of cycles required to service an interrupt.
const interruptCycles = 7

// CPU implements the 8-bit microprocessor. Register logic is implemented by
// the Register type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem cpubus.Memory

	// last result. only valid once an instruction has successfully completed
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU should be Reset() before use.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(registers.StackTop),
		Status: registers.NewStatusRegister(),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC with the address stored
// at the reset vector. If the vector cannot be read the PC is loaded with
// cpubus.DefaultEntry instead.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(registers.StackTop)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true

	if err := mc.LoadPCIndirect(cpubus.Reset); err != nil {
		logger.Logf(logger.Allow, "cpu", "reset vector: %v: using %#04x", err, cpubus.DefaultEntry)
		mc.PC.Load(cpubus.DefaultEntry)
	}
}

// LoadPCIndirect loads the contents of indirectAddress into the PC. The PC is
// unchanged if the address cannot be read.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	address, err := mc.read16(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

// read16 composes a little-endian word from two sequential reads.
func (mc *CPU) read16(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return bits.Word(lo, hi), nil
}

// read8BitPC reads the byte at the PC and advances the PC. The byte is
// recorded as the instruction data of the current instruction.
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	mc.LastResult.InstructionData = uint16(v)
	return v, nil
}

// read16BitPC reads the little-endian word at the PC and advances the PC by
// two.
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	v := bits.Word(lo, hi)
	mc.LastResult.InstructionData = v
	return v, nil
}

// push writes the value at the stack pointer and then decrements the stack
// pointer.
func (mc *CPU) push(v uint8) error {
	return mc.mem.Write(mc.SP.Push(), v)
}

// pull increments the stack pointer and then reads the value.
func (mc *CPU) pull() (uint8, error) {
	return mc.mem.Read(mc.SP.Pull())
}

// state is a copy of the register file.
type state struct {
	pc     registers.ProgramCounter
	a      registers.Register
	x      registers.Register
	y      registers.Register
	sp     registers.StackPointer
	status registers.StatusRegister
}

func (mc *CPU) save() state {
	return state{
		pc:     mc.PC,
		a:      mc.A,
		x:      mc.X,
		y:      mc.Y,
		sp:     mc.SP,
		status: mc.Status,
	}
}

func (mc *CPU) restore(s state) {
	mc.PC = s.pc
	mc.A = s.a
	mc.X = s.x
	mc.Y = s.y
	mc.SP = s.sp
	mc.Status = s.status
}

// ExecuteInstruction steps CPU forward one instruction and returns the number
// of cycles the instruction took.
//
// The register file is left unchanged if the instruction fails. Memory writes
// made by the instruction before the failure are not undone.
func (mc *CPU) ExecuteInstruction() (int, error) {
	s := mc.save()

	cycles, err := mc.executeInstruction()
	if err != nil {
		mc.restore(s)
		return 0, err
	}

	return cycles, nil
}

func (mc *CPU) executeInstruction() (int, error) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	mc.LastResult.InstructionData = 0

	defn := instructions.Lookup(opcode)
	mc.LastResult.Defn = defn

	operator := operators[defn.Mnemonic]
	if operator == nil {
		return 0, curated.Errorf(cpubus.NotYetImplemented, opcode, mc.LastResult.Address)
	}

	op, err := mc.resolve(defn.AddressingMode)
	if err != nil {
		return 0, err
	}

	if err := operator(mc, op); err != nil {
		return 0, err
	}

	mc.LastResult.Cycles = defn.Cycles
	mc.LastResult.Final = true

	return defn.Cycles, nil
}

// NonMaskableInterrupt pushes the PC and the status register onto the stack
// and loads the PC with the address stored at the NMI vector. Returns the
// number of cycles taken.
func (mc *CPU) NonMaskableInterrupt() (int, error) {
	s := mc.save()

	err := mc.interrupt(cpubus.NMI, false)
	if err != nil {
		mc.restore(s)
		return 0, err
	}

	return interruptCycles, nil
}

// interrupt is used by NMI and BRK. the break argument sets the state of the
// break flag in the pushed status value.
func (mc *CPU) interrupt(vector uint16, brk bool) error {
	hi, lo := bits.Split(mc.PC.Address())
	if err := mc.push(hi); err != nil {
		return err
	}
	if err := mc.push(lo); err != nil {
		return err
	}

	mc.Status.Break = brk
	if err := mc.push(mc.Status.Value()); err != nil {
		return err
	}
	mc.Status.InterruptDisable = true

	return mc.LoadPCIndirect(vector)
}
