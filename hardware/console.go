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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/famicore/cartridgeloader"
	"github.com/jetsetilly/famicore/hardware/cpu"
	"github.com/jetsetilly/famicore/hardware/memory"
	"github.com/jetsetilly/famicore/hardware/patterns"
	"github.com/jetsetilly/famicore/hardware/ppu"
	"github.com/jetsetilly/famicore/hardware/ppu/vram"
	"github.com/jetsetilly/famicore/logger"
)

// Console struct is the main container for the emulated components of the
// console.
type Console struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	// PPU is nil until a cartridge is attached
	PPU *ppu.PPU

	Cartridge cartridgeloader.Cartridge

	// the number of CPU cycles executed since the last reset. includes the
	// cycles consumed by interrupts
	Cycles int

	// suppress log entries made by the console
	Quiet bool
}

// NewConsole creates a new Console and everything associated with the
// hardware.
func NewConsole() *Console {
	con := &Console{
		Mem: memory.NewMemory(),
	}
	con.CPU = cpu.NewCPU(con.Mem)
	return con
}

// AllowLogging implements the logger.Permission interface.
func (con *Console) AllowLogging() bool {
	return !con.Quiet
}

func (con *Console) String() string {
	if con.PPU == nil {
		return fmt.Sprintf("%s\nno cartridge", con.CPU)
	}
	return fmt.Sprintf("%s\n%s", con.CPU, con.PPU)
}

// AttachCartridge connects the cartridge to the memory bus and creates the
// PPU with the cartridge's pattern data. The FrameBuffer can be nil.
//
// The console is reset once the cartridge has been attached.
func (con *Console) AttachCartridge(cart cartridgeloader.Cartridge, fb ppu.FrameBuffer) {
	con.Cartridge = cart

	mem := vram.NewMemory(patterns.NewStore(cart.Patterns), cart.Mirroring)
	con.PPU = ppu.NewPPU(mem, fb)

	con.Mem.AttachCartridge(cart.Program)
	con.Mem.AttachRegisters(con.PPU)

	logger.Logf(con, "console", "attached cartridge: %s", cart)

	con.Reset()
}

// Reset emulates the reset switch on the console
//   - clear RAM
//   - reset the PPU
//   - reset the CPU, which loads the reset address into the PC
func (con *Console) Reset() {
	con.Mem.Reset()
	if con.PPU != nil {
		con.PPU.Reset()
	}
	con.CPU.Reset()
	con.Cycles = 0
}
