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

// Dimensions of the attribute grid. Each cell covers 2x2 tiles.
const (
	AttributeWidth  = NameTableWidth / 2
	AttributeHeight = NameTableHeight / 2
)

// AttributeTableLength is the number of bytes in an attribute table.
const AttributeTableLength = 0x40

// blocks per row of the packed table. each block covers 2x2 cells
const attributeBlocks = AttributeWidth / 2

// AttributeTable is the unpacked grid of 2 bit palette selects. Indexed by
// [row][column].
//
// The packed form is one byte per block of 2x2 cells:
//
//	bits 0-1	top left
//	bits 2-3	top right
//	bits 4-5	bottom left
//	bits 6-7	bottom right
//
// The grid has an odd number of rows so the blocks of the last packed row
// only have a top half. Writes to the bottom half of those blocks are
// discarded.
type AttributeTable [AttributeHeight][AttributeWidth]uint8

// block returns the top-left cell of the block for offset.
func block(offset uint16) (row int, col int) {
	return int(offset/attributeBlocks) * 2, int(offset%attributeBlocks) * 2
}

// Read the packed byte at offset.
func (at *AttributeTable) Read(offset uint16) (uint8, error) {
	if offset >= AttributeTableLength {
		return 0, curated.Errorf(cpubus.OutOfRange, offset)
	}

	row, col := block(offset)

	v := at[row][col] | at[row][col+1]<<2
	if row+1 < AttributeHeight {
		v |= at[row+1][col]<<4 | at[row+1][col+1]<<6
	}

	return v, nil
}

// Write the packed byte at offset.
func (at *AttributeTable) Write(offset uint16, data uint8) error {
	if offset >= AttributeTableLength {
		return curated.Errorf(cpubus.OutOfRange, offset)
	}

	row, col := block(offset)

	at[row][col] = data & 0x03
	at[row][col+1] = (data >> 2) & 0x03
	if row+1 < AttributeHeight {
		at[row+1][col] = (data >> 4) & 0x03
		at[row+1][col+1] = (data >> 6) & 0x03
	}

	return nil
}

// Line returns length palette selects of row, starting at column. The length
// is clipped to the end of the row.
func (at *AttributeTable) Line(row int, column int, length int) []uint8 {
	if column+length > AttributeWidth {
		length = AttributeWidth - column
	}
	return at[row][column : column+length]
}
