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
	"image"
	"image/color"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/memory/cpubus"
	"golang.org/x/image/draw"
)

// FrameBuffer receives the output of the PPU.
type FrameBuffer interface {
	// SetPixel is called for every pixel of a rendered scanline. x is in the
	// range 0 to 255 and y is in the range 0 to 239
	SetPixel(x, y int, col color.RGBA) error

	// NewFrame is called after the last scanline of a frame. frameNum is the
	// number of frames completed since the PPU was reset
	NewFrame(frameNum int) error
}

// Screen is a simple implementation of FrameBuffer that stores the most recent
// frame as an image.
type Screen struct {
	Image    *image.RGBA
	FrameNum int
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen() *Screen {
	return &Screen{
		Image: image.NewRGBA(image.Rect(0, 0, VisibleWidth, VisibleLines)),
	}
}

// SetPixel implements the FrameBuffer interface.
func (scr *Screen) SetPixel(x, y int, col color.RGBA) error {
	if x < 0 || x >= VisibleWidth || y < 0 || y >= VisibleLines {
		return curated.Errorf(cpubus.OutOfRange, x+y*VisibleWidth)
	}
	scr.Image.SetRGBA(x, y, col)
	return nil
}

// NewFrame implements the FrameBuffer interface.
func (scr *Screen) NewFrame(frameNum int) error {
	scr.FrameNum = frameNum
	return nil
}

// Scaled returns a copy of the most recent frame, scaled by an integer factor
// with nearest neighbour sampling. A factor of less than one is treated as
// one.
func (scr *Screen) Scaled(factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	r := scr.Image.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, r.Dx()*factor, r.Dy()*factor))
	draw.NearestNeighbor.Scale(img, img.Bounds(), scr.Image, r, draw.Src, nil)
	return img
}
