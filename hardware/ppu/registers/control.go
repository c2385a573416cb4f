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

package registers

import (
	"github.com/jetsetilly/famicore/bits"
)

// Control is the first control register of the PPU.
type Control uint8

// BaseNameTable returns the quadrant selected by the two least significant
// bits.
func (c Control) BaseNameTable() int {
	return int(c & 0x03)
}

// Increment returns the amount the video memory address is increased by
// after every access of the data register.
func (c Control) Increment() uint16 {
	if bits.Bit(uint8(c), 2) {
		return 32
	}
	return 1
}

// SpriteTable returns the offset in the pattern store of the tiles used for
// sprites.
func (c Control) SpriteTable() int {
	if bits.Bit(uint8(c), 3) {
		return 256
	}
	return 0
}

// BackgroundTable returns the offset in the pattern store of the tiles used
// for the background.
func (c Control) BackgroundTable() int {
	if bits.Bit(uint8(c), 4) {
		return 256
	}
	return 0
}

// NMI returns true if the PPU should raise an NMI at the start of VBLANK.
func (c Control) NMI() bool {
	return bits.Bit(uint8(c), 7)
}

// Mask is the second control register of the PPU.
type Mask uint8

// ShowBackground returns true if background rendering is enabled.
func (m Mask) ShowBackground() bool {
	return bits.Bit(uint8(m), 3)
}

// ShowSprites returns true if sprite rendering is enabled.
func (m Mask) ShowSprites() bool {
	return bits.Bit(uint8(m), 4)
}

// Status is the status register of the PPU.
type Status uint8

// VBlank returns the state of the VBLANK flag.
func (s Status) VBlank() bool {
	return bits.Bit(uint8(s), 7)
}

// SetVBlank returns the status with the VBLANK flag changed.
func (s Status) SetVBlank(v bool) Status {
	return Status(bits.Set(uint8(s), 7, v))
}

// SpriteZeroHit returns the state of the sprite zero hit flag.
func (s Status) SpriteZeroHit() bool {
	return bits.Bit(uint8(s), 6)
}

// SetSpriteZeroHit returns the status with the sprite zero hit flag changed.
func (s Status) SetSpriteZeroHit(v bool) Status {
	return Status(bits.Set(uint8(s), 6, v))
}

// SpriteOverflow returns the state of the sprite overflow flag.
func (s Status) SpriteOverflow() bool {
	return bits.Bit(uint8(s), 5)
}

// SetSpriteOverflow returns the status with the sprite overflow flag changed.
func (s Status) SetSpriteOverflow(v bool) Status {
	return Status(bits.Set(uint8(s), 5, v))
}
