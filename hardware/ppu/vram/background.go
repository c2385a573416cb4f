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
	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/memory/cpubus"
)

// BackgroundLength is the number of bytes in a background table. A name table
// followed by an attribute table.
const BackgroundLength = NameTableLength + AttributeTableLength

// Background is a name table and its attribute table.
type Background struct {
	Names      NameTable
	Attributes AttributeTable
}

// Read the byte at offset.
func (bg *Background) Read(offset uint16) (uint8, error) {
	if offset < NameTableLength {
		return bg.Names.Read(offset)
	}
	if offset < BackgroundLength {
		return bg.Attributes.Read(offset - NameTableLength)
	}
	return 0, curated.Errorf(cpubus.OutOfRange, offset)
}

// Write the byte at offset.
func (bg *Background) Write(offset uint16, data uint8) error {
	if offset < NameTableLength {
		return bg.Names.Write(offset, data)
	}
	if offset < BackgroundLength {
		return bg.Attributes.Write(offset-NameTableLength, data)
	}
	return curated.Errorf(cpubus.OutOfRange, offset)
}

// TileRow returns the tile indexes and the palette selects for length tiles of
// row, starting at column. There is one palette select for every tile.
func (bg *Background) TileRow(row int, column int, length int) (names []uint8, palettes []uint8) {
	names = bg.Names.Line(row, column, length)
	palettes = make([]uint8, len(names))
	for i := range names {
		palettes[i] = bg.Attributes[row/2][(column+i)/2]
	}
	return names, palettes
}
