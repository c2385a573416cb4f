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

package disassembly

import (
	"fmt"
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool

	// include entries that have not been blessed. the program is listed
	// linearly
	Decoded bool
}

// Write the disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for o := 0; o < len(dsm.Entries); {
		e := dsm.Entries[o]

		if e.Level < EntryLevelBlessed && !attr.Decoded {
			o++
			continue
		}

		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}

		o += e.Result.ByteCount
	}

	return nil
}

// WriteEntry writes a single Entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e.Label != "" {
		if _, err := fmt.Fprintf(output, "%s\n", e.Label); err != nil {
			return err
		}
	}

	if attr.ByteCode {
		if _, err := fmt.Fprintf(output, "%-8s  ", e.Bytecode); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "%s  %s\n", e.Address, e.Operator+operand(e.Operand))
	return err
}

func operand(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
