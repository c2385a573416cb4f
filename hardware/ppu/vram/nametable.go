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

// Dimensions of the name table in tiles.
const (
	NameTableWidth  = 32
	NameTableHeight = 30
)

// NameTableLength is the number of bytes in a name table.
const NameTableLength = NameTableWidth * NameTableHeight

// NameTable is a grid of tile indexes. Indexed by [row][column].
type NameTable [NameTableHeight][NameTableWidth]uint8

// Read the tile index at offset.
func (nt *NameTable) Read(offset uint16) (uint8, error) {
	if offset >= NameTableLength {
		return 0, curated.Errorf(cpubus.OutOfRange, offset)
	}
	return nt[offset/NameTableWidth][offset%NameTableWidth], nil
}

// Write the tile index at offset.
func (nt *NameTable) Write(offset uint16, data uint8) error {
	if offset >= NameTableLength {
		return curated.Errorf(cpubus.OutOfRange, offset)
	}
	nt[offset/NameTableWidth][offset%NameTableWidth] = data
	return nil
}

// Line returns length tile indexes of row, starting at column. The length is
// clipped to the end of the row.
func (nt *NameTable) Line(row int, column int, length int) []uint8 {
	if column+length > NameTableWidth {
		length = NameTableWidth - column
	}
	return nt[row][column : column+length]
}
