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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// The CPU address space is divided into regions. Every address belongs to
// exactly one region and every region has an access policy. Some regions are
// mirrors of another region, in which case the address is brought into the
// range of the backing region with a modulo operation. The MapAddress()
// function should be used whenever an address is being used from the
// viewpoint of the CPU.
//
//	ma, area := memorymap.MapAddress(address)
//
// The Summary() function lists every region in the address space and is
// useful for reference.
package memorymap
