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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/famicore/bits"
	"github.com/jetsetilly/famicore/hardware/cpu/instructions"
	"github.com/jetsetilly/famicore/hardware/memory/cpubus"
)

// the interrupt vectors are the starting points of the program flow. listed
// in order of label precedence
var vectors = []struct {
	address uint16
	label   string
}{
	{address: cpubus.Reset, label: "RESET"},
	{address: cpubus.NMI, label: "NMI"},
	{address: cpubus.IRQ, label: "IRQ"},
}

// bless those entries which we're reasonably sure are real instructions.
func (dsm *Disassembly) bless() {
	var blessings []int

	// add the blessing point and label the entry. an existing label is never
	// replaced
	target := func(address uint16, label string) {
		o, ok := dsm.offset(address)
		if !ok {
			return
		}
		if dsm.Entries[o].Label == "" {
			if label == "" {
				label = fmt.Sprintf("L%04x", dsm.Entries[o].Result.Address)
			}
			dsm.Entries[o].Label = label
		}
		blessings = append(blessings, o)
	}

	for _, v := range vectors {
		lo, _ := dsm.offset(v.address)
		hi, _ := dsm.offset(v.address + 1)
		target(bits.Word(dsm.program[lo], dsm.program[hi]), v.label)
	}

	// we only bless instructions that naturally follow on from the previous
	// instruction. a sequence ends when a significant flow control event
	// occurs or when an entry has already been blessed
	for len(blessings) > 0 {
		o := blessings[0]
		blessings = blessings[1:]

		for o < len(dsm.Entries) {
			e := dsm.Entries[o]
			if e.Level == EntryLevelBlessed || !e.Result.Final {
				break
			}
			e.Level = EntryLevelBlessed

			r := e.Result
			end := false

			switch r.Defn.Mnemonic {
			case instructions.JMP:
				if r.Defn.AddressingMode == instructions.Absolute {
					target(r.InstructionData, "")
				}
				end = true
			case instructions.JSR:
				target(r.InstructionData, "")
			case instructions.RTS, instructions.RTI, instructions.BRK:
				end = true
			default:
				if r.Defn.IsBranch() {
					next := r.Address + uint16(r.Defn.Bytes())
					target(uint16(int32(next)+int32(int8(r.InstructionData))), "")
				}
			}

			if end {
				break
			}

			o += r.Defn.Bytes()
		}
	}
}
