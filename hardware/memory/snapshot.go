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

package memory

import "github.com/c64ensemble/c64/curated"

// Snapshot encodes the machine's RAM, colour RAM and processor port
// state. The ROM images and any attached cartridge are not included:
// ROMs never change, and a cartridge snapshots itself independently
// through its own CartMapper.Snapshot.
func (mem *Memory) Snapshot() []byte {
	buf := make([]byte, 0, len(mem.ram)+len(mem.colorRAM)+2)
	buf = append(buf, mem.ram[:]...)
	buf = append(buf, mem.colorRAM[:]...)
	buf = append(buf, mem.portDDR, mem.portOutput)
	return buf
}

// Restore reverses Snapshot and recomputes the banking tables from the
// restored processor port state.
func (mem *Memory) Restore(data []byte) error {
	want := len(mem.ram) + len(mem.colorRAM) + 2
	if len(data) < want {
		return curated.Errorf("memory: truncated snapshot (%d bytes)", len(data))
	}
	copy(mem.ram[:], data)
	data = data[len(mem.ram):]
	copy(mem.colorRAM[:], data)
	data = data[len(mem.colorRAM):]
	mem.portDDR = data[0]
	mem.portOutput = data[1]
	mem.updateBanking()
	return nil
}
