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

package vram

import (
	"fmt"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/memory/cpubus"
)

// PaletteTableLength is the number of bytes in the palette table.
const PaletteTableLength = 0x20

// Palette is four indexes into the hardware colour table.
type Palette [4]uint8

// PaletteTable holds the four background palettes followed by the four
// sprite palettes. The first entry of each sprite palette is a mirror of the
// first entry of the corresponding background palette.
type PaletteTable [PaletteTableLength]uint8

func (pt PaletteTable) String() string {
	return fmt.Sprintf("% 02x", pt[:])
}

// mirror maps the first entry of the sprite palettes onto the background
// palettes.
func mirror(offset uint16) uint16 {
	if offset >= 0x10 && offset&0x03 == 0 {
		return offset - 0x10
	}
	return offset
}

// Read the palette entry at offset.
func (pt *PaletteTable) Read(offset uint16) (uint8, error) {
	if offset >= PaletteTableLength {
		return 0, curated.Errorf(cpubus.OutOfRange, offset)
	}
	return pt[mirror(offset)], nil
}

// Write the palette entry at offset.
func (pt *PaletteTable) Write(offset uint16, data uint8) error {
	if offset >= PaletteTableLength {
		return curated.Errorf(cpubus.OutOfRange, offset)
	}
	pt[mirror(offset)] = data & 0x3f
	return nil
}

// Backdrop returns the colour index used when nothing else is drawn.
func (pt *PaletteTable) Backdrop() uint8 {
	return pt[0]
}

// Background returns background palette n. The first entry is always the
// backdrop.
func (pt *PaletteTable) Background(n int) Palette {
	n &= 0x03
	return Palette{pt[0], pt[4*n+1], pt[4*n+2], pt[4*n+3]}
}

// Sprite returns sprite palette n. The first entry is transparent and is
// given as the backdrop.
func (pt *PaletteTable) Sprite(n int) Palette {
	n &= 0x03
	return Palette{pt[0], pt[0x10+4*n+1], pt[0x10+4*n+2], pt[0x10+4*n+3]}
}
