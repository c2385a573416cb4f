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

// Package cpu emulates the 8-bit microprocessor of the console. Like all
// 8-bit processors of the era, the CPU executes instructions according to the
// single byte value read from an address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// The instruction definition for that opcode is then used to move execution
// of the program forward.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument. See the cpubus package for
// details.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// It executes exactly one instruction and returns the number of cycles the
// instruction took. The console uses this value to drive the PPU, which runs
// three times faster than the CPU.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	for {
//		cycles, err := mc.ExecuteInstruction()
//		if err != nil {
//			return err
//		}
//		...
//	}
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
//
// Some simplifications are made compared to the real hardware. The stack
// pointer is a 16 bit counter, zero page indexing does not wrap within the
// zero page, indirect jumps do not suffer from the page boundary bug and there
// is no extra cycle for page crossings or taken branches.
package cpu
