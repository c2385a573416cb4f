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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image/color"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/ppu"
)

// Video is an implementation of the ppu.FrameBuffer interface with an
// embedded FrameBuffer that all calls are forwarded to. The embedded
// FrameBuffer can be nil.
//
// The digest is chained: the hash of each frame includes the hash of the
// previous frame.
type Video struct {
	ppu.FrameBuffer

	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

const pixelDepth = 3

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(fb ppu.FrameBuffer) *Video {
	return &Video{
		FrameBuffer: fb,

		// length of pixels array contains enough room for the previous frames
		// digest value
		pixels: make([]byte, sha1.Size+ppu.VisibleWidth*ppu.VisibleLines*pixelDepth),
	}
}

// Hash implements digest.Digest interface.
func (dig Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Frame returns the number of the most recently completed frame.
func (dig Video) Frame() int {
	return dig.frameNum
}

// NewFrame implements the ppu.FrameBuffer interface.
func (dig *Video) NewFrame(frameNum int) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: video: digest error during new frame")
	}
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frameNum

	if dig.FrameBuffer != nil {
		return dig.FrameBuffer.NewFrame(frameNum)
	}

	return nil
}

// SetPixel implements the ppu.FrameBuffer interface.
func (dig *Video) SetPixel(x, y int, col color.RGBA) error {
	if x < 0 || x >= ppu.VisibleWidth || y < 0 || y >= ppu.VisibleLines {
		return curated.Errorf("digest: video: pixel out of range (%d, %d)", x, y)
	}

	// preserve the first few bytes for a chained fingerprint
	i := len(dig.digest)
	i += ppu.VisibleWidth * y * pixelDepth
	i += x * pixelDepth

	dig.pixels[i] = col.R
	dig.pixels[i+1] = col.G
	dig.pixels[i+2] = col.B

	if dig.FrameBuffer != nil {
		return dig.FrameBuffer.SetPixel(x, y, col)
	}

	return nil
}
