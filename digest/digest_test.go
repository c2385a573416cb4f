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

package digest_test

import (
	"image/color"
	"strings"
	"testing"

	"github.com/jetsetilly/famicore/cartridgeloader"
	"github.com/jetsetilly/famicore/digest"
	"github.com/jetsetilly/famicore/hardware"
	"github.com/jetsetilly/famicore/hardware/ppu"
	"github.com/jetsetilly/famicore/test"
)

func TestVideo(t *testing.T) {
	a := digest.NewVideo(nil)
	b := digest.NewVideo(nil)

	var _ digest.Digest = a
	var _ ppu.FrameBuffer = a

	test.ExpectEquality(t, a.Hash(), strings.Repeat("0", 40))

	test.ExpectSuccess(t, a.NewFrame(1))
	test.ExpectSuccess(t, b.NewFrame(1))
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.Frame(), 1)

	// identical frames produce different hashes because of chaining
	h := a.Hash()
	test.ExpectSuccess(t, a.NewFrame(2))
	test.ExpectInequality(t, a.Hash(), h)

	// a single pixel changes the hash
	test.ExpectSuccess(t, b.SetPixel(10, 10, color.RGBA{R: 1, A: 255}))
	test.ExpectSuccess(t, b.NewFrame(2))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	test.ExpectFailure(t, a.SetPixel(ppu.VisibleWidth, 0, color.RGBA{}))
	test.ExpectFailure(t, a.SetPixel(0, -1, color.RGBA{}))

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), strings.Repeat("0", 40))
}

func TestForwarding(t *testing.T) {
	scr := ppu.NewScreen()
	dig := digest.NewVideo(scr)

	col := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	test.ExpectSuccess(t, dig.SetPixel(5, 6, col))
	test.ExpectEquality(t, scr.Image.RGBAAt(5, 6), col)

	test.ExpectSuccess(t, dig.NewFrame(3))
	test.ExpectEquality(t, scr.FrameNum, 3)
}

// the same program run twice produces the same digest
func TestConsoleDigest(t *testing.T) {
	prg := make([]uint8, 0x4000)
	copy(prg, []uint8{
		0xa9, 0x3f, // LDA #$3f
		0x8d, 0x06, 0x20, // STA $2006
		0xa9, 0x00, // LDA #$00
		0x8d, 0x06, 0x20, // STA $2006
		0xe8,             // INX
		0x8e, 0x07, 0x20, // STX $2007
		0xa9, 0x3f, // LDA #$3f
		0x8d, 0x06, 0x20, // STA $2006
		0xa9, 0x00, // LDA #$00
		0x8d, 0x06, 0x20, // STA $2006
		0x4c, 0x0a, 0x80, // JMP $800a
	})
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80

	cart := cartridgeloader.Cartridge{
		Program:   prg,
		Patterns:  make([]uint8, 0x2000),
		Mirroring: cartridgeloader.Vertical,
	}

	run := func() string {
		dig := digest.NewVideo(nil)
		con := hardware.NewConsole()
		con.AttachCartridge(cart, dig)
		err := con.RunForFrameCount(3, nil)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, dig.Frame(), 3)
		return dig.Hash()
	}

	h := run()
	test.ExpectInequality(t, h, strings.Repeat("0", 40))
	test.ExpectEquality(t, run(), h)
}
