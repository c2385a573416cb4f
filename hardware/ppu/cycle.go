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
	"fmt"
)

// Timing of the PPU in PPU cycles and scanlines.
const (
	VisibleWidth   = 256
	HBlankWidth    = 85
	ScanlineCycles = VisibleWidth + HBlankWidth

	VisibleLines = 240
	VBlankLines  = 20
	TotalLines   = VisibleLines + VBlankLines

	FrameCycles = ScanlineCycles * TotalLines
)

// Cycle counts PPU cycles over the course of a frame.
type Cycle struct {
	count int

	// the scanline that will be completed next
	next int
}

func (c Cycle) String() string {
	return fmt.Sprintf("scanline %d, dot %d", c.Scanline(), c.Dot())
}

// Reset the counter to the start of the frame.
func (c *Cycle) Reset() {
	c.count = 0
	c.next = 0
}

// Add cycles to the counter.
func (c *Cycle) Add(cycles int) {
	c.count += cycles
}

// Count returns the number of cycles since the start of the frame.
func (c Cycle) Count() int {
	return c.count
}

// Scanline returns the current scanline.
func (c Cycle) Scanline() int {
	return c.count / ScanlineCycles
}

// Dot returns the cycle within the current scanline.
func (c Cycle) Dot() int {
	return c.count % ScanlineCycles
}

// InVBlank returns true if the counter is beyond the visible scanlines.
func (c Cycle) InVBlank() bool {
	return c.Scanline() >= VisibleLines
}

// InHBlank returns true if the counter is beyond the visible part of the
// scanline.
func (c Cycle) InHBlank() bool {
	return c.Dot() >= VisibleWidth
}

// CompletedLine returns the next scanline that has been completed and not yet
// returned by a previous call. Returns false if there is no such scanline.
func (c *Cycle) CompletedLine() (int, bool) {
	if c.next >= TotalLines || c.count < (c.next+1)*ScanlineCycles {
		return 0, false
	}
	line := c.next
	c.next++
	return line, true
}

// FrameComplete returns true if the counter has reached the end of the frame.
func (c Cycle) FrameComplete() bool {
	return c.count >= FrameCycles
}

// Rewind the counter by exactly one frame. Cycles beyond the end of the frame
// are carried into the next frame.
func (c *Cycle) Rewind() {
	c.count -= FrameCycles
	c.next = 0
}
