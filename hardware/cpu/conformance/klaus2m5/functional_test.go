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

package klaus2m5

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/c64ensemble/c64/hardware/cpu"
)

// flatMem is a full 64KiB address space with no banking, matching what the
// functional test binaries expect: they are whole memory-image dumps, not
// just the code region.
type flatMem struct {
	data [0x10000]uint8
}

func (m *flatMem) Read(address uint16) (uint8, error)     { return m.data[address], nil }
func (m *flatMem) Write(address uint16, value uint8) error { m.data[address] = value; return nil }
func (m *flatMem) Peek(address uint16) (uint8, error)      { return m.data[address], nil }
func (m *flatMem) Poke(address uint16, value uint8) error  { m.data[address] = value; return nil }

// entryPoint is $0400, where both tests are entered directly since they are
// built with ROM_vectors disabled.
const entryPoint = 0x0400

// maxInstructions bounds the run so a genuine CPU bug that never settles
// into the test's own trap loop fails the test instead of hanging it.
const maxInstructions = 200_000_000

// runToTrap executes instructions until the processor counter stops
// advancing - both tests finish by jumping to their own address in an
// infinite loop - and returns the address it trapped at.
func runToTrap(t *testing.T, mc *cpu.CPU, binPath string) uint16 {
	t.Helper()
	for i := 0; i < maxInstructions; i++ {
		before := mc.PC
		if err := mc.ExecuteInstruction(func() error { return nil }); err != nil {
			t.Fatalf("%s: %v", binPath, err)
		}
		if mc.PC == before {
			return before
		}
	}
	t.Fatalf("%s: did not trap within %d instructions", binPath, maxInstructions)
	return 0
}

func loadBinary(t *testing.T, binPath string) *flatMem {
	t.Helper()
	data, err := os.ReadFile(binPath)
	if err != nil {
		t.Skipf("functional test binary not present at %s: assemble it from https://github.com/Klaus2m5/6502_65C02_functional_tests to run this test", binPath)
	}
	mem := &flatMem{}
	copy(mem.data[:], data)
	return mem
}

func TestFunctional(t *testing.T) {
	binPath := filepath.Join("functional_test", "6502_functional_test.bin")
	mem := loadBinary(t, binPath)

	mc := cpu.NewCPU(mem, nil)
	mc.PC = entryPoint

	trap := runToTrap(t, mc, binPath)
	t.Logf("%s: trapped at $%04x", binPath, trap)
}

func TestDecimal(t *testing.T) {
	binPath := filepath.Join("decimal_mode", "6502_decimal_test.bin")
	mem := loadBinary(t, binPath)

	mc := cpu.NewCPU(mem, nil)
	mc.PC = entryPoint

	trap := runToTrap(t, mc, binPath)
	t.Logf("%s: trapped at $%04x", binPath, trap)
}
