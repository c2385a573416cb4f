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

package patterns

import (
	"strings"

	"github.com/jetsetilly/famicore/bits"
	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/memory/cpubus"
)

// TileSize is the width and height of a tile in pixels.
const TileSize = 8

// TileBytes is the number of bytes used to encode a single tile.
const TileBytes = TileSize * 2

// Tile is a decoded 8x8 matrix of colour indices. Indexed by [row][column].
// Each colour index is in the range 0 to 3.
type Tile [TileSize][TileSize]uint8

// Decode a single tile from the 16 bytes of encoded data. Data must be at
// least TileBytes long.
func Decode(data []uint8) Tile {
	var tl Tile
	for row := 0; row < TileSize; row++ {
		lo := data[row]
		hi := data[row+TileSize]
		for col := 0; col < TileSize; col++ {
			n := TileSize - 1 - col
			var v uint8
			if bits.Bit(lo, n) {
				v |= 0x01
			}
			if bits.Bit(hi, n) {
				v |= 0x02
			}
			tl[row][col] = v
		}
	}
	return tl
}

// Zero returns true if every pixel in the tile has a colour index of zero.
func (tl Tile) Zero() bool {
	for row := range tl {
		for _, v := range tl[row] {
			if v != 0 {
				return false
			}
		}
	}
	return true
}

func (tl Tile) String() string {
	s := strings.Builder{}
	for row := range tl {
		for _, v := range tl[row] {
			s.WriteByte(".123"[v])
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Store is the collection of decoded tiles. It is immutable after creation.
type Store struct {
	tiles []Tile

	// the raw pattern data. required so that the video memory can present the
	// pattern table through the PPU data port
	raw []uint8
}

// NewStore decodes every complete group of 16 bytes in data. A trailing
// partial group is ignored.
func NewStore(data []uint8) *Store {
	st := &Store{
		tiles: make([]Tile, len(data)/TileBytes),
		raw:   make([]uint8, len(data)),
	}
	copy(st.raw, data)

	for i := range st.tiles {
		st.tiles[i] = Decode(st.raw[i*TileBytes : (i+1)*TileBytes])
	}

	return st
}

// Len returns the number of tiles in the store.
func (st *Store) Len() int {
	return len(st.tiles)
}

// Tile returns the decoded tile at index.
func (st *Store) Tile(index int) (Tile, error) {
	if index < 0 || index >= len(st.tiles) {
		return Tile{}, curated.Errorf(cpubus.OutOfRange, index)
	}
	return st.tiles[index], nil
}

// Read returns the raw pattern byte at address.
func (st *Store) Read(address uint16) (uint8, error) {
	if int(address) >= len(st.raw) {
		return 0, curated.Errorf(cpubus.OutOfRange, address)
	}
	return st.raw[address], nil
}
