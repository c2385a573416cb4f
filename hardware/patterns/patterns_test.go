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

package patterns_test

import (
	"testing"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/memory/cpubus"
	"github.com/jetsetilly/famicore/hardware/patterns"
	"github.com/jetsetilly/famicore/test"
)

func TestDecode(t *testing.T) {
	data := make([]uint8, patterns.TileBytes)
	data[0] = 0b10001000
	data[8] = 0b10001000

	tl := patterns.Decode(data)
	test.ExpectEquality(t, tl[0], [patterns.TileSize]uint8{3, 0, 0, 0, 3, 0, 0, 0})
	test.ExpectFailure(t, tl.Zero())

	// other rows are all zero
	for row := 1; row < patterns.TileSize; row++ {
		test.ExpectEquality(t, tl[row], [patterns.TileSize]uint8{})
	}
}

func TestDecodePlanes(t *testing.T) {
	data := make([]uint8, patterns.TileBytes)

	// low plane only on row 1, high plane only on row 2
	data[1] = 0b01000001
	data[10] = 0b00100000

	tl := patterns.Decode(data)
	test.ExpectEquality(t, tl[1], [patterns.TileSize]uint8{0, 1, 0, 0, 0, 0, 0, 1})
	test.ExpectEquality(t, tl[2], [patterns.TileSize]uint8{0, 0, 2, 0, 0, 0, 0, 0})
}

func TestZero(t *testing.T) {
	tl := patterns.Decode(make([]uint8, patterns.TileBytes))
	test.ExpectSuccess(t, tl.Zero())
}

func TestStore(t *testing.T) {
	data := make([]uint8, patterns.TileBytes*2+3)
	data[patterns.TileBytes] = 0xff
	data[patterns.TileBytes+8] = 0xff

	st := patterns.NewStore(data)
	test.ExpectEquality(t, st.Len(), 2)

	tl, err := st.Tile(0)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tl.Zero())

	tl, err = st.Tile(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tl[0], [patterns.TileSize]uint8{3, 3, 3, 3, 3, 3, 3, 3})
	test.ExpectEquality(t, tl.String()[:9], "33333333\n")

	_, err = st.Tile(2)
	test.ExpectSuccess(t, curated.Is(err, cpubus.OutOfRange))

	// raw bytes are available, including the partial group
	v, err := st.Read(patterns.TileBytes)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xff)

	_, err = st.Read(uint16(len(data)))
	test.ExpectSuccess(t, curated.Is(err, cpubus.OutOfRange))
}
