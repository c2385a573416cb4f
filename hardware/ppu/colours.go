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

package ppu

import (
	"image/color"

	"github.com/fogleman/nes/nes"
	"github.com/jetsetilly/famicore/hardware/ppu/vram"
)

// colour returns the RGB value for an index into the hardware colour table.
func colour(index uint8) color.RGBA {
	return nes.Palette[index&0x3f]
}

// Colours is the resolved form of a vram.Palette.
type Colours [4]color.RGBA

func resolve(p vram.Palette) Colours {
	return Colours{colour(p[0]), colour(p[1]), colour(p[2]), colour(p[3])}
}
