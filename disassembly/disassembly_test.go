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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/famicore/cartridgeloader"
	"github.com/jetsetilly/famicore/disassembly"
	"github.com/jetsetilly/famicore/hardware/cpu/instructions"
	"github.com/jetsetilly/famicore/test"
)

func program() []uint8 {
	prg := make([]uint8, 0x4000)
	copy(prg, []uint8{
		0x78,             // 8000 SEI
		0xa9, 0x80, //       8001 LDA #$80
		0x8d, 0x00, 0x20, // 8003 STA $2000
		0x20, 0x0c, 0x80, // 8006 JSR $800c
		0x4c, 0x09, 0x80, // 8009 JMP $8009
		0xe8,       //       800c INX
		0xd0, 0xfe, //       800d BNE $800d
		0x60, //             800f RTS
		0x02, //             8010 undefined
		0x40, //             8011 RTI
	})

	// NMI
	prg[0x3ffa] = 0x11
	prg[0x3ffb] = 0x80

	// reset
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	// IRQ
	prg[0x3ffe] = 0x11
	prg[0x3fff] = 0x80

	return prg
}

func TestBlessing(t *testing.T) {
	dsm, err := disassembly.FromCartridge(cartridgeloader.Cartridge{Program: program()})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, len(dsm.Entries), 0x4000)
	test.ExpectEquality(t, dsm.Count(disassembly.EntryLevelBlessed), 9)
	test.ExpectEquality(t, dsm.Count(disassembly.EntryLevelDecoded), 0x4000)

	e, ok := dsm.Get(0x8000)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, e.Label, "RESET")
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelBlessed)

	// mirrored address
	m, ok := dsm.Get(0xc000)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, m, e)

	// addresses outside of program ROM
	_, ok = dsm.Get(0x2000)
	test.ExpectEquality(t, ok, false)

	// the undefined opcode is never reached
	e, _ = dsm.Get(0x8010)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)
	test.ExpectEquality(t, e.Operator, "???")
	test.ExpectEquality(t, e.Result.Final, false)

	// the NMI vector takes precedence over the IRQ vector for the label
	e, _ = dsm.Get(0x8011)
	test.ExpectEquality(t, e.Label, "NMI")
	test.ExpectEquality(t, e.Result.Defn.Mnemonic, instructions.RTI)

	// branch target
	e, _ = dsm.Get(0x800d)
	test.ExpectEquality(t, e.Label, "L800d")
	test.ExpectEquality(t, e.Operand, "$800d")
	test.ExpectEquality(t, e.String(), "800d BNE $800d")
}

func TestSymbols(t *testing.T) {
	dsm, err := disassembly.FromProgram([]uint8{
		0x8d, 0x00, 0x20, // STA $2000
		0xad, 0x0a, 0x20, // LDA $200a
		0x8d, 0x14, 0x40, // STA $4014
		0x9d, 0x07, 0x20, // STA $2007,X
		0x8d, 0x00, 0x02, // STA $0200
		0x20, 0x00, 0x20, // JSR $2000
	})
	test.DemandSuccess(t, err)

	operands := []string{"PPUCTRL", "PPUSTATUS", "OAMDMA", "PPUDATA,X", "$0200", "$2000"}
	for i, o := range operands {
		test.ExpectEquality(t, dsm.Entries[i*3].Operand, o)
	}

	// the final instruction runs off the end of the program
	dsm, err = disassembly.FromProgram([]uint8{0xea, 0x8d, 0x00})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dsm.Entries[0].Result.Final, true)
	test.ExpectEquality(t, dsm.Entries[1].Result.Final, false)
	test.ExpectEquality(t, dsm.Entries[1].Operand, "$????")

	_, err = disassembly.FromProgram(nil)
	test.ExpectFailure(t, err)
}

func TestWrite(t *testing.T) {
	dsm, err := disassembly.FromProgram(program())
	test.DemandSuccess(t, err)

	tw := &test.CompareWriter{}
	err = dsm.Write(tw, disassembly.WriteAttr{})
	test.ExpectSuccess(t, err)

	expected := "RESET\n" +
		"8000  SEI\n" +
		"8001  LDA #$80\n" +
		"8003  STA PPUCTRL\n" +
		"8006  JSR $800c\n" +
		"L8009\n" +
		"8009  JMP $8009\n" +
		"L800c\n" +
		"800c  INX\n" +
		"L800d\n" +
		"800d  BNE $800d\n" +
		"800f  RTS\n" +
		"NMI\n" +
		"8011  RTI\n"

	test.ExpectSuccess(t, tw.Compare(expected), tw.String())

	tw.Clear()
	e, _ := dsm.Get(0x8003)
	err = dsm.WriteEntry(tw, disassembly.WriteAttr{ByteCode: true}, e)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tw.Compare("8d 00 20  8003  STA PPUCTRL\n"), tw.String())
}
