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

package ppu

import (
	"fmt"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/memory/cpubus"
	"github.com/jetsetilly/famicore/hardware/memory/memorymap"
	"github.com/jetsetilly/famicore/hardware/ppu/registers"
	"github.com/jetsetilly/famicore/hardware/ppu/vram"
)

// Offsets of the registers in the register window.
const (
	PPUCTRL   = uint16(0)
	PPUMASK   = uint16(1)
	PPUSTATUS = uint16(2)
	OAMADDR   = uint16(3)
	OAMDATA   = uint16(4)
	PPUSCROLL = uint16(5)
	PPUADDR   = uint16(6)
	PPUDATA   = uint16(7)
)

// OAMLength is the number of bytes in sprite memory. Four bytes for each of
// the 64 sprites.
const OAMLength = 256

// PPU contains all the sub-components of the picture processing unit.
type PPU struct {
	mem *vram.Memory
	fb  FrameBuffer

	Control registers.Control
	Mask    registers.Mask
	Status  registers.Status

	// the scroll latch is written horizontal value first. the address latch
	// is written high byte first
	Scroll  registers.Latch
	Address registers.Latch

	OAMAddress uint8
	OAM        [OAMLength]uint8

	Cycle    Cycle
	FrameNum int

	// an NMI has been raised and not yet collected by the console
	nmi bool
}

// NewPPU is the preferred method of initialisation for the PPU type. The
// FrameBuffer can be nil, in which case no rendering takes place.
func NewPPU(mem *vram.Memory, fb FrameBuffer) *PPU {
	return &PPU{
		mem: mem,
		fb:  fb,
	}
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("ctrl=%02x mask=%02x status=%02x scroll=[%s] addr=[%s] %s",
		uint8(ppu.Control), uint8(ppu.Mask), uint8(ppu.Status),
		ppu.Scroll, ppu.Address, ppu.Cycle)
}

// Reset the PPU. The video memory is cleared and the cycle counter starts at
// the beginning of the frame.
func (ppu *PPU) Reset() {
	ppu.mem.Reset()
	ppu.Control = 0
	ppu.Mask = 0
	ppu.Status = 0
	ppu.Scroll = registers.Latch{}
	ppu.Address = registers.Latch{}
	ppu.OAMAddress = 0
	ppu.OAM = [OAMLength]uint8{}
	ppu.Cycle.Reset()
	ppu.FrameNum = 0
	ppu.nmi = false
}

// VRAM returns the video memory of the PPU.
func (ppu *PPU) VRAM() *vram.Memory {
	return ppu.mem
}

// NMI returns true if the PPU has raised an NMI since the last call to NMI().
func (ppu *PPU) NMI() bool {
	nmi := ppu.nmi
	ppu.nmi = false
	return nmi
}

// the CPU address of a register. used for error messages
func address(offset uint16) uint16 {
	return memorymap.OriginPPU + offset
}

// increment the video memory address by the amount selected in the control
// register.
func (ppu *PPU) increment() {
	ppu.Address.Load((ppu.Address.Word() + ppu.Control.Increment()) & vram.AddressMask)
}

// ReadRegister implements the memory.Registers interface.
func (ppu *PPU) ReadRegister(offset uint16) (uint8, error) {
	switch offset {
	case PPUCTRL, PPUMASK, OAMADDR, PPUSCROLL, PPUADDR:
		return 0, curated.Errorf(cpubus.WriteOnly, address(offset))

	case PPUSTATUS:
		v := uint8(ppu.Status)
		ppu.Scroll.ResetPhase()
		ppu.Address.ResetPhase()
		ppu.Status = ppu.Status.SetVBlank(false)
		return v, nil

	case OAMDATA:
		return ppu.OAM[ppu.OAMAddress], nil

	case PPUDATA:
		v, err := ppu.mem.Read(ppu.Address.Word())
		if err != nil {
			return 0, err
		}
		ppu.increment()
		return v, nil
	}

	return 0, curated.Errorf(cpubus.OutOfRange, address(offset))
}

// WriteRegister implements the memory.Registers interface.
func (ppu *PPU) WriteRegister(offset uint16, data uint8) error {
	switch offset {
	case PPUCTRL:
		ppu.Control = registers.Control(data)

	case PPUMASK:
		ppu.Mask = registers.Mask(data)

	case PPUSTATUS:
		return curated.Errorf(cpubus.ReadOnly, address(offset))

	case OAMADDR:
		ppu.OAMAddress = data

	case OAMDATA:
		ppu.OAM[ppu.OAMAddress] = data
		ppu.OAMAddress++

	case PPUSCROLL:
		ppu.Scroll.Write(data)

	case PPUADDR:
		ppu.Address.Write(data)

	case PPUDATA:
		if err := ppu.mem.Write(ppu.Address.Word(), data); err != nil {
			return err
		}
		ppu.increment()

	default:
		return curated.Errorf(cpubus.OutOfRange, address(offset))
	}

	return nil
}

// PeekRegister implements the memory.Registers interface.
func (ppu *PPU) PeekRegister(offset uint16) uint8 {
	switch offset {
	case PPUCTRL:
		return uint8(ppu.Control)
	case PPUMASK:
		return uint8(ppu.Mask)
	case PPUSTATUS:
		return uint8(ppu.Status)
	case OAMADDR:
		return ppu.OAMAddress
	case OAMDATA:
		return ppu.OAM[ppu.OAMAddress]
	case PPUSCROLL:
		return ppu.Scroll.Second
	case PPUADDR:
		return ppu.Address.Second
	case PPUDATA:
		v, _ := ppu.mem.Read(ppu.Address.Word())
		return v
	}
	return 0
}

// SpriteDMA implements the memory.SpriteDMA interface. Data is copied to
// sprite memory starting at the current sprite address.
func (ppu *PPU) SpriteDMA(data []uint8) error {
	for _, v := range data {
		ppu.OAM[ppu.OAMAddress] = v
		ppu.OAMAddress++
	}
	return nil
}

// Step the PPU forward by the number of PPU cycles in the budget. Returns true
// if a frame has been completed. Cycles carried past the end of a frame are
// processed in the next frame before returning.
func (ppu *PPU) Step(budget int) (bool, error) {
	ppu.Cycle.Add(budget)

	complete := false

	for {
		if err := ppu.completeLines(); err != nil {
			return complete, err
		}

		if !ppu.Cycle.FrameComplete() {
			return complete, nil
		}

		ppu.Cycle.Rewind()
		ppu.Status = ppu.Status.SetVBlank(false).SetSpriteZeroHit(false).SetSpriteOverflow(false)
		ppu.FrameNum++
		complete = true

		if ppu.fb != nil {
			if err := ppu.fb.NewFrame(ppu.FrameNum); err != nil {
				return complete, err
			}
		}
	}
}

// completeLines renders every scanline completed since the last call. The
// vblank flag is raised after the last visible line.
func (ppu *PPU) completeLines() error {
	for {
		line, ok := ppu.Cycle.CompletedLine()
		if !ok {
			return nil
		}

		if line >= VisibleLines {
			continue
		}

		if err := ppu.renderScanline(line); err != nil {
			return err
		}

		if line == VisibleLines-1 {
			ppu.Status = ppu.Status.SetVBlank(true)
			if ppu.Control.NMI() {
				ppu.nmi = true
			}
		}
	}
}
