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
	"github.com/jetsetilly/famicore/bits"
	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/cpu/instructions"
	"github.com/jetsetilly/famicore/hardware/cpu/registers"
	"github.com/jetsetilly/famicore/hardware/memory/cpubus"
)

// operand is the result of addressing mode resolution.
type operand struct {
	mode instructions.AddressingMode

	// the effective address. not used for Implied, Accumulator and
	// Immediate addressing
	address uint16

	// the value for Immediate addressing
	value uint8
}

// resolve reads the operand bytes that follow the opcode and computes the
// effective address for the addressing mode.
func (mc *CPU) resolve(mode instructions.AddressingMode) (operand, error) {
	op := operand{mode: mode}

	switch mode {
	case instructions.Implied, instructions.Accumulator:

	case instructions.Immediate:
		v, err := mc.read8BitPC()
		if err != nil {
			return op, err
		}
		op.value = v

	case instructions.Relative:
		v, err := mc.read8BitPC()
		if err != nil {
			return op, err
		}
		target := mc.PC
		target.Relative(v)
		op.address = target.Address()

	case instructions.ZeroPage, instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		v, err := mc.read8BitPC()
		if err != nil {
			return op, err
		}
		op.address = uint16(v)
		if mode == instructions.ZeroPageIndexedX {
			op.address += uint16(mc.X.Value())
		} else if mode == instructions.ZeroPageIndexedY {
			op.address += uint16(mc.Y.Value())
		}

	case instructions.Absolute, instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		v, err := mc.read16BitPC()
		if err != nil {
			return op, err
		}
		op.address = v
		if mode == instructions.AbsoluteIndexedX {
			op.address += uint16(mc.X.Value())
		} else if mode == instructions.AbsoluteIndexedY {
			op.address += uint16(mc.Y.Value())
		}

	case instructions.Indirect:
		v, err := mc.read16BitPC()
		if err != nil {
			return op, err
		}
		op.address, err = mc.read16(v)
		if err != nil {
			return op, err
		}

	case instructions.IndexedIndirect:
		v, err := mc.read8BitPC()
		if err != nil {
			return op, err
		}
		op.address, err = mc.read16(uint16(v) + uint16(mc.X.Value()))
		if err != nil {
			return op, err
		}

	case instructions.IndirectIndexed:
		v, err := mc.read8BitPC()
		if err != nil {
			return op, err
		}
		base, err := mc.read16(uint16(v))
		if err != nil {
			return op, err
		}
		op.address = base + uint16(mc.Y.Value())
	}

	return op, nil
}

// value returns the operand value. memory is read for addressing modes
// other than Immediate and Accumulator.
func (mc *CPU) value(op operand) (uint8, error) {
	switch op.mode {
	case instructions.Immediate:
		return op.value, nil
	case instructions.Accumulator:
		return mc.A.Value(), nil
	case instructions.Implied:
		return 0, mc.notYetImplemented()
	}
	return mc.mem.Read(op.address)
}

// store writes v to the accumulator or to the effective address.
func (mc *CPU) store(op operand, v uint8) error {
	switch op.mode {
	case instructions.Accumulator:
		mc.A.Load(v)
		return nil
	case instructions.Implied, instructions.Immediate:
		return mc.notYetImplemented()
	}
	return mc.mem.Write(op.address, v)
}

func (mc *CPU) notYetImplemented() error {
	return curated.Errorf(cpubus.NotYetImplemented, mc.LastResult.Defn.OpCode, mc.LastResult.Address)
}

func (mc *CPU) setNZ(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = bits.Bit(v, 7)
}

// operator performs the work of an instruction once the operand has been
// resolved.
type operator func(mc *CPU, op operand) error

// operators is indexed by mnemonic. a nil entry is an instruction without an
// implementation.
var operators = [instructions.NumMnemonics]operator{
	instructions.ADC: adc,
	instructions.AND: and,
	instructions.ASL: asl,
	instructions.BCC: branch(func(mc *CPU) bool { return !mc.Status.Carry }),
	instructions.BCS: branch(func(mc *CPU) bool { return mc.Status.Carry }),
	instructions.BEQ: branch(func(mc *CPU) bool { return mc.Status.Zero }),
	instructions.BIT: bit,
	instructions.BMI: branch(func(mc *CPU) bool { return mc.Status.Sign }),
	instructions.BNE: branch(func(mc *CPU) bool { return !mc.Status.Zero }),
	instructions.BPL: branch(func(mc *CPU) bool { return !mc.Status.Sign }),
	instructions.BRK: brk,
	instructions.BVC: branch(func(mc *CPU) bool { return !mc.Status.Overflow }),
	instructions.BVS: branch(func(mc *CPU) bool { return mc.Status.Overflow }),
	instructions.CLC: flag(registers.Carry, false),
	instructions.CLD: flag(registers.DecimalMode, false),
	instructions.CLI: flag(registers.InterruptDisable, false),
	instructions.CLV: flag(registers.Overflow, false),
	instructions.CMP: compare(func(mc *CPU) registers.Register { return mc.A }),
	instructions.CPX: compare(func(mc *CPU) registers.Register { return mc.X }),
	instructions.CPY: compare(func(mc *CPU) registers.Register { return mc.Y }),
	instructions.DEC: step(0xff),
	instructions.DEX: stepRegister(func(mc *CPU) *registers.Register { return &mc.X }, 0xff),
	instructions.DEY: stepRegister(func(mc *CPU) *registers.Register { return &mc.Y }, 0xff),
	instructions.EOR: eor,
	instructions.INC: step(0x01),
	instructions.INX: stepRegister(func(mc *CPU) *registers.Register { return &mc.X }, 0x01),
	instructions.INY: stepRegister(func(mc *CPU) *registers.Register { return &mc.Y }, 0x01),
	instructions.JMP: jmp,
	instructions.JSR: jsr,
	instructions.LDA: load(func(mc *CPU) *registers.Register { return &mc.A }),
	instructions.LDX: load(func(mc *CPU) *registers.Register { return &mc.X }),
	instructions.LDY: load(func(mc *CPU) *registers.Register { return &mc.Y }),
	instructions.LSR: lsr,
	instructions.NOP: nop,
	instructions.ORA: ora,
	instructions.PHA: pha,
	instructions.PHP: php,
	instructions.PLA: pla,
	instructions.PLP: plp,
	instructions.ROL: rol,
	instructions.ROR: ror,
	instructions.RTI: rti,
	instructions.RTS: rts,
	instructions.SBC: sbc,
	instructions.SEC: flag(registers.Carry, true),
	instructions.SED: flag(registers.DecimalMode, true),
	instructions.SEI: flag(registers.InterruptDisable, true),
	instructions.STA: storeRegister(func(mc *CPU) registers.Register { return mc.A }),
	instructions.STX: storeRegister(func(mc *CPU) registers.Register { return mc.X }),
	instructions.STY: storeRegister(func(mc *CPU) registers.Register { return mc.Y }),
	instructions.TAX: transfer(func(mc *CPU) (*registers.Register, registers.Register) { return &mc.X, mc.A }),
	instructions.TAY: transfer(func(mc *CPU) (*registers.Register, registers.Register) { return &mc.Y, mc.A }),
	instructions.TSX: tsx,
	instructions.TXA: transfer(func(mc *CPU) (*registers.Register, registers.Register) { return &mc.A, mc.X }),
	instructions.TXS: txs,
	instructions.TYA: transfer(func(mc *CPU) (*registers.Register, registers.Register) { return &mc.A, mc.Y }),
}

func nop(mc *CPU, op operand) error {
	return nil
}

func adc(mc *CPU, op operand) error {
	v, err := mc.value(op)
	if err != nil {
		return err
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
	mc.setNZ(mc.A.Value())
	return nil
}

func sbc(mc *CPU, op operand) error {
	v, err := mc.value(op)
	if err != nil {
		return err
	}
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
	mc.setNZ(mc.A.Value())
	return nil
}

func and(mc *CPU, op operand) error {
	v, err := mc.value(op)
	if err != nil {
		return err
	}
	mc.A.AND(v)
	mc.setNZ(mc.A.Value())
	return nil
}

func eor(mc *CPU, op operand) error {
	v, err := mc.value(op)
	if err != nil {
		return err
	}
	mc.A.EOR(v)
	mc.setNZ(mc.A.Value())
	return nil
}

func ora(mc *CPU, op operand) error {
	v, err := mc.value(op)
	if err != nil {
		return err
	}
	mc.A.ORA(v)
	mc.setNZ(mc.A.Value())
	return nil
}

func bit(mc *CPU, op operand) error {
	v, err := mc.value(op)
	if err != nil {
		return err
	}
	mc.Status.Zero = mc.A.Value()&v == 0
	mc.Status.Sign = bits.Bit(v, 7)
	mc.Status.Overflow = bits.Bit(v, 6)
	return nil
}

// shift performs read-modify-write on the accumulator or memory. the shift
// function returns the new carry state.
func shift(f func(r *registers.Register, carry bool) bool) operator {
	return func(mc *CPU, op operand) error {
		v, err := mc.value(op)
		if err != nil {
			return err
		}
		r := registers.NewRegister(v, "shift")
		carry := f(&r, mc.Status.Carry)
		if err := mc.store(op, r.Value()); err != nil {
			return err
		}
		mc.Status.Carry = carry
		mc.setNZ(r.Value())
		return nil
	}
}

var (
	asl = shift(func(r *registers.Register, _ bool) bool { return r.ASL() })
	lsr = shift(func(r *registers.Register, _ bool) bool { return r.LSR() })
	rol = shift(func(r *registers.Register, carry bool) bool { return r.ROL(carry) })
	ror = shift(func(r *registers.Register, carry bool) bool { return r.ROR(carry) })
)

func branch(cond func(mc *CPU) bool) operator {
	return func(mc *CPU, op operand) error {
		if cond(mc) {
			mc.PC.Load(op.address)
		}
		return nil
	}
}

func flag(f registers.Flag, state bool) operator {
	return func(mc *CPU, _ operand) error {
		return mc.Status.Set(f, state)
	}
}

func compare(reg func(mc *CPU) registers.Register) operator {
	return func(mc *CPU, op operand) error {
		v, err := mc.value(op)
		if err != nil {
			return err
		}
		carry, result := reg(mc).Compare(v)
		mc.Status.Carry = carry
		mc.setNZ(result)
		return nil
	}
}

// step adds delta to a memory location. a delta of 0xff decrements.
func step(delta uint8) operator {
	return func(mc *CPU, op operand) error {
		v, err := mc.value(op)
		if err != nil {
			return err
		}
		v += delta
		if err := mc.store(op, v); err != nil {
			return err
		}
		mc.setNZ(v)
		return nil
	}
}

func stepRegister(reg func(mc *CPU) *registers.Register, delta uint8) operator {
	return func(mc *CPU, _ operand) error {
		r := reg(mc)
		r.Load(r.Value() + delta)
		mc.setNZ(r.Value())
		return nil
	}
}

func load(reg func(mc *CPU) *registers.Register) operator {
	return func(mc *CPU, op operand) error {
		v, err := mc.value(op)
		if err != nil {
			return err
		}
		reg(mc).Load(v)
		mc.setNZ(v)
		return nil
	}
}

func storeRegister(reg func(mc *CPU) registers.Register) operator {
	return func(mc *CPU, op operand) error {
		return mc.store(op, reg(mc).Value())
	}
}

func transfer(regs func(mc *CPU) (*registers.Register, registers.Register)) operator {
	return func(mc *CPU, _ operand) error {
		dest, src := regs(mc)
		dest.Load(src.Value())
		mc.setNZ(src.Value())
		return nil
	}
}

func tsx(mc *CPU, _ operand) error {
	mc.X.Load(mc.SP.Value())
	mc.setNZ(mc.X.Value())
	return nil
}

// txs places the X register in page one. the status register is unaffected.
func txs(mc *CPU, _ operand) error {
	mc.SP.Load(0x0100 | uint16(mc.X.Value()))
	return nil
}

func jmp(mc *CPU, op operand) error {
	mc.PC.Load(op.address)
	return nil
}

// jsr pushes the address of the last byte of the JSR instruction. high byte
// first.
func jsr(mc *CPU, op operand) error {
	hi, lo := bits.Split(mc.PC.Address() - 1)
	if err := mc.push(hi); err != nil {
		return err
	}
	if err := mc.push(lo); err != nil {
		return err
	}
	mc.PC.Load(op.address)
	return nil
}

func rts(mc *CPU, _ operand) error {
	lo, err := mc.pull()
	if err != nil {
		return err
	}
	hi, err := mc.pull()
	if err != nil {
		return err
	}
	mc.PC.Load(bits.Word(lo, hi))
	mc.PC.Add(1)
	return nil
}

// brk is ignored if interrupts are disabled.
func brk(mc *CPU, _ operand) error {
	if mc.Status.InterruptDisable {
		return nil
	}
	return mc.interrupt(cpubus.IRQ, true)
}

func rti(mc *CPU, _ operand) error {
	sr, err := mc.pull()
	if err != nil {
		return err
	}
	lo, err := mc.pull()
	if err != nil {
		return err
	}
	hi, err := mc.pull()
	if err != nil {
		return err
	}
	mc.Status.Load(sr)
	mc.PC.Load(bits.Word(lo, hi))
	return nil
}

func pha(mc *CPU, _ operand) error {
	return mc.push(mc.A.Value())
}

// php always pushes the status with the break flag set.
func php(mc *CPU, _ operand) error {
	return mc.push(bits.Set(mc.Status.Value(), int(registers.Break), true))
}

func pla(mc *CPU, _ operand) error {
	v, err := mc.pull()
	if err != nil {
		return err
	}
	mc.A.Load(v)
	mc.setNZ(v)
	return nil
}

func plp(mc *CPU, _ operand) error {
	v, err := mc.pull()
	if err != nil {
		return err
	}
	mc.Status.Load(v)
	return nil
}
