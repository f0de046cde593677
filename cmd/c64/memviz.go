// This file is part of the C64 chip ensemble.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/c64ensemble/c64/hardware/memory"
)

// dumpMemoryMap renders mem's internal banking tables as a Graphviz .dot
// file at path, useful for visualising which of RAM/ROM/cartridge/IO the
// PLA has currently mapped into each of the sixteen 4 KiB pages.
func dumpMemoryMap(mem *memory.Memory, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, mem)
	return nil
}
