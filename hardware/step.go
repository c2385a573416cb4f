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
	"github.com/jetsetilly/famicore/logger"
)

// ClockRatio is the number of PPU cycles for every CPU cycle.
const ClockRatio = 3

// Step executes one CPU instruction and then advances the PPU by ClockRatio
// PPU cycles for every CPU cycle the instruction took. If the PPU raises an
// NMI during the step then the CPU is interrupted and the PPU is advanced by
// the cycles consumed by the interrupt.
//
// Returns true if the PPU completed a frame during the step. Errors are
// fatal for the step and are logged before being returned.
func (con *Console) Step() (bool, error) {
	cycles, err := con.CPU.ExecuteInstruction()
	if err != nil {
		logger.Logf(con, "console", "%v", err)
		return false, err
	}

	frame, err := con.stepPPU(cycles)
	if err != nil {
		return frame, err
	}

	// the PPU is nil if no cartridge has been attached
	if con.PPU == nil || !con.PPU.NMI() {
		return frame, nil
	}

	cycles, err = con.CPU.NonMaskableInterrupt()
	if err != nil {
		logger.Logf(con, "console", "%v", err)
		return frame, err
	}

	f, err := con.stepPPU(cycles)
	return frame || f, err
}

func (con *Console) stepPPU(cycles int) (bool, error) {
	con.Cycles += cycles

	if con.PPU == nil {
		return false, nil
	}

	frame, err := con.PPU.Step(cycles * ClockRatio)
	if err != nil {
		logger.Logf(con, "console", "%v", err)
	}

	return frame, err
}
