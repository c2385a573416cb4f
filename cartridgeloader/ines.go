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

package cartridgeloader

import (
	"bytes"
	"fmt"

	"github.com/jetsetilly/famicore/curated"
)

// Sentinel error patterns for iNES parsing.
const (
	NotINES         = "cartridgeloader: not an iNES file"
	UnsupportedINES = "cartridgeloader: unsupported cartridge (%s)"
	TruncatedINES   = "cartridgeloader: file is truncated (%d bytes instead of %d)"
)

const (
	headerLength     = 16
	trainerLength    = 512
	programUnitSize  = 16384
	patternsUnitSize = 8192
)

var magic = []byte{'N', 'E', 'S', 0x1a}

// Mirroring describes how the four logical nametable quadrants are mapped to
// the physical nametables.
type Mirroring int

// List of valid Mirroring values.
const (
	// quadrants 0 and 1 share a table. as do quadrants 2 and 3
	Horizontal Mirroring = iota

	// quadrants 0 and 2 share a table. as do quadrants 1 and 3
	Vertical

	// every quadrant has its own table
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case FourScreen:
		return "four screen"
	}
	return "unknown"
}

// Cartridge is the result of parsing an iNES file.
type Cartridge struct {
	Program   []uint8
	Patterns  []uint8
	Mirroring Mirroring
	Mapper    int

	// battery backed expansion RAM
	Battery bool
}

func (cart Cartridge) String() string {
	return fmt.Sprintf("mapper %d, %dk program, %dk patterns, %s mirroring",
		cart.Mapper, len(cart.Program)/1024, len(cart.Patterns)/1024, cart.Mirroring)
}

// Parse data as an iNES file. Only mapper 0 is supported.
func Parse(data []uint8) (Cartridge, error) {
	var cart Cartridge

	if len(data) < headerLength || !bytes.Equal(data[:4], magic) {
		return cart, curated.Errorf(NotINES)
	}

	programSize := int(data[4]) * programUnitSize
	patternsSize := int(data[5]) * patternsUnitSize
	flags6 := data[6]
	flags7 := data[7]

	// pattern RAM is not emulated
	if patternsSize == 0 {
		return cart, curated.Errorf(UnsupportedINES, "pattern RAM")
	}

	cart.Mapper = int(flags7&0xf0) | int(flags6>>4)
	if cart.Mapper != 0 {
		return cart, curated.Errorf(UnsupportedINES, fmt.Sprintf("mapper %d", cart.Mapper))
	}

	switch {
	case flags6&0x08 == 0x08:
		cart.Mirroring = FourScreen
	case flags6&0x01 == 0x01:
		cart.Mirroring = Vertical
	default:
		cart.Mirroring = Horizontal
	}

	cart.Battery = flags6&0x02 == 0x02

	offset := headerLength
	if flags6&0x04 == 0x04 {
		offset += trainerLength
	}

	expected := offset + programSize + patternsSize
	if len(data) < expected {
		return cart, curated.Errorf(TruncatedINES, len(data), expected)
	}

	cart.Program = make([]uint8, programSize)
	copy(cart.Program, data[offset:])
	offset += programSize

	cart.Patterns = make([]uint8, patternsSize)
	copy(cart.Patterns, data[offset:])

	return cart, nil
}
