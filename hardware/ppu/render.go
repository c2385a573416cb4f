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

	"github.com/jetsetilly/famicore/bits"
	"github.com/jetsetilly/famicore/hardware/patterns"
	"github.com/jetsetilly/famicore/hardware/ppu/vram"
)

// scanline is the working data for a single line of output.
type scanline struct {
	pixels [VisibleWidth]color.RGBA

	// background pixel is not transparent
	opaque [VisibleWidth]bool
}

// renderScanline evaluates the background and sprites of line y. Status
// flags are updated whether or not there is a FrameBuffer to receive the
// pixels.
func (ppu *PPU) renderScanline(y int) error {
	var sl scanline

	backdrop := colour(ppu.mem.Palette.Backdrop())
	for x := range sl.pixels {
		sl.pixels[x] = backdrop
	}

	if ppu.Mask.ShowBackground() {
		if err := ppu.renderBackground(y, &sl); err != nil {
			return err
		}
	}

	if ppu.Mask.ShowSprites() {
		if err := ppu.renderSprites(y, &sl); err != nil {
			return err
		}
	}

	if ppu.fb == nil {
		return nil
	}

	for x := range sl.pixels {
		if err := ppu.fb.SetPixel(x, y, sl.pixels[x]); err != nil {
			return err
		}
	}

	return nil
}

// backgroundRow returns the tile indexes and palette selects of the tile row
// as seen through the scroll window. tileRow is in the range 0 to 59 and
// column in the range 0 to 63. the row is the tail of one quadrant followed
// by the head of the next, one tile longer than the screen.
func (ppu *PPU) backgroundRow(tileRow int, column int) ([]uint8, []uint8) {
	top := 0
	if tileRow >= vram.NameTableHeight {
		top = 2
		tileRow -= vram.NameTableHeight
	}

	first := column / vram.NameTableWidth
	column %= vram.NameTableWidth

	const length = vram.NameTableWidth + 1

	names := make([]uint8, 0, length)
	palettes := make([]uint8, 0, length)

	n, p := ppu.mem.Quadrant(top+first).TileRow(tileRow, column, length)
	names = append(names, n...)
	palettes = append(palettes, p...)

	n, p = ppu.mem.Quadrant(top+1-first).TileRow(tileRow, 0, length-len(names))
	names = append(names, n...)
	palettes = append(palettes, p...)

	return names, palettes
}

func (ppu *PPU) renderBackground(y int, sl *scanline) error {
	base := ppu.Control.BaseNameTable()

	// position of the scanline in the space of all four quadrants
	wx := int(ppu.Scroll.First) + (base&0x01)*VisibleWidth
	wy := (y + int(ppu.Scroll.Second) + (base>>1)*VisibleLines) % (VisibleLines * 2)

	fineX := wx % patterns.TileSize
	fineY := wy % patterns.TileSize

	names, palettes := ppu.backgroundRow(wy/patterns.TileSize, (wx/patterns.TileSize)%(vram.NameTableWidth*2))

	for i := range names {
		tile, err := ppu.mem.Patterns().Tile(int(names[i]) + ppu.Control.BackgroundTable())
		if err != nil {
			return err
		}

		// transparent tiles show the backdrop
		if tile.Zero() {
			continue
		}

		cols := resolve(ppu.mem.Palette.Background(int(palettes[i])))
		for c := 0; c < patterns.TileSize; c++ {
			x := i*patterns.TileSize + c - fineX
			if x < 0 || x >= VisibleWidth {
				continue
			}
			v := tile[fineY][c]
			sl.pixels[x] = cols[v]
			sl.opaque[x] = v != 0
		}
	}

	return nil
}

// the maximum number of sprites on a scanline.
const maxSprites = 8

func (ppu *PPU) renderSprites(y int, sl *scanline) error {
	var drawn [VisibleWidth]bool
	count := 0

	for s := 0; s < OAMLength/4; s++ {
		entry := ppu.OAM[s*4 : s*4+4]

		// sprites are drawn one line below the Y position
		top := int(entry[0]) + 1
		if y < top || y >= top+patterns.TileSize {
			continue
		}

		count++
		if count > maxSprites {
			ppu.Status = ppu.Status.SetSpriteOverflow(true)
			break
		}

		attr := entry[2]
		row := y - top
		if bits.Bit(attr, 7) {
			row = patterns.TileSize - 1 - row
		}

		tile, err := ppu.mem.Patterns().Tile(int(entry[1]) + ppu.Control.SpriteTable())
		if err != nil {
			return err
		}

		cols := resolve(ppu.mem.Palette.Sprite(int(attr & 0x03)))
		behind := bits.Bit(attr, 5)

		for c := 0; c < patterns.TileSize; c++ {
			x := int(entry[3]) + c
			if x >= VisibleWidth {
				break
			}

			tc := c
			if bits.Bit(attr, 6) {
				tc = patterns.TileSize - 1 - c
			}

			v := tile[row][tc]
			if v == 0 || drawn[x] {
				continue
			}
			drawn[x] = true

			if s == 0 && sl.opaque[x] {
				ppu.Status = ppu.Status.SetSpriteZeroHit(true)
			}

			if behind && sl.opaque[x] {
				continue
			}

			sl.pixels[x] = cols[v]
		}
	}

	return nil
}
