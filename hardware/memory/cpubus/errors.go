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

package cpubus

// Sentinel error patterns for memory access. For use with curated.Errorf()
// and curated.Is()/curated.Has().
const (
	// address or index is outside of the valid range of the area.
	OutOfRange = "address out of range (%#04x)"

	// write to an area that is backed by ROM.
	ReadOnly = "read only address (%#04x)"

	// read of a register that can only be written to.
	WriteOnly = "write only address (%#04x)"

	// address is recognised but is not backed by anything.
	Unimplemented = "unimplemented address (%#04x)"

	// opcode without a handler. the values are the opcode and the address
	// of the opcode.
	NotYetImplemented = "not yet implemented opcode (%#02x) at (%#04x)"
)
