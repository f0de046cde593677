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
	"fmt"
	"os"
	"path/filepath"

	"github.com/c64ensemble/c64/hardware"
)

// romSetFiles names the four fixed images a ROM-set directory holds. A
// drive ROM is optional: its absence just means no VC1541 will ever be
// attached, not a missing-ROM exit.
var romSetFiles = struct {
	basic, kernal, char, drive string
}{
	basic:  "basic.rom",
	kernal: "kernal.rom",
	char:   "chargen.rom",
	drive:  "1541.rom",
}

// loadROMSet reads the three fixed main-side ROMs (and, if present, the
// VC1541 DOS ROM) out of dir, one file per image, named as romSetFiles
// describes.
func loadROMSet(dir string) (hardware.ROMs, error) {
	var roms hardware.ROMs
	var err error

	if roms.Basic, err = readROM(dir, romSetFiles.basic); err != nil {
		return roms, err
	}
	if roms.Kernal, err = readROM(dir, romSetFiles.kernal); err != nil {
		return roms, err
	}
	if roms.Char, err = readROM(dir, romSetFiles.char); err != nil {
		return roms, err
	}

	driveROM, err := readROM(dir, romSetFiles.drive)
	if err == nil {
		roms.Drive = driveROM
	}

	return roms, nil
}

func readROM(dir, name string) ([]byte, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rom set: %s: %w", path, err)
	}
	return data, nil
}
