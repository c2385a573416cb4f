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

package memory

import (
	"encoding/hex"

	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/memory/cpubus"
)

// Area is a simple block of memory beginning at origin. It is used for all
// RAM and ROM areas of the console.
type Area struct {
	label    string
	origin   uint16
	readOnly bool
	data     []uint8
}

// NewArea is the preferred method of initialisation for the Area type.
func NewArea(label string, origin uint16, size int, readOnly bool) *Area {
	return &Area{
		label:    label,
		origin:   origin,
		readOnly: readOnly,
		data:     make([]uint8, size),
	}
}

// Label returns the name of the area.
func (ar *Area) Label() string {
	return ar.label
}

// Reset contents of area to zero. Has no effect on read-only areas.
func (ar *Area) Reset() {
	if ar.readOnly {
		return
	}
	for i := range ar.data {
		ar.data[i] = 0
	}
}

func (ar *Area) String() string {
	return hex.Dump(ar.data)
}

// Read returns the value at address. Address must be normalised.
func (ar *Area) Read(address uint16) (uint8, error) {
	idx := int(address - ar.origin)
	if address < ar.origin || idx >= len(ar.data) {
		return 0, curated.Errorf(cpubus.OutOfRange, address)
	}
	return ar.data[idx], nil
}

// Write data to address. Address must be normalised.
func (ar *Area) Write(address uint16, data uint8) error {
	if ar.readOnly {
		return curated.Errorf(cpubus.ReadOnly, address)
	}
	return ar.Poke(address, data)
}

// Peek is the same as Read.
func (ar *Area) Peek(address uint16) (uint8, error) {
	return ar.Read(address)
}

// Poke writes data to address even if the area is read-only.
func (ar *Area) Poke(address uint16, data uint8) error {
	idx := int(address - ar.origin)
	if address < ar.origin || idx >= len(ar.data) {
		return curated.Errorf(cpubus.OutOfRange, address)
	}
	ar.data[idx] = data
	return nil
}
