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

package cartridgeloader

import (
	"path"
	"strings"
)

// Kind identifies which of the four media types Load() fetched, decided
// from the filename's extension.
type Kind int

const (
	KindUnknown Kind = iota
	KindCartridge
	KindDisk
	KindProgram
	KindTape
)

// FileExtensions is the list of file extensions the loader recognises.
var FileExtensions = [...]string{".CRT", ".D64", ".PRG", ".T64"}

// Kind reports which media type the loader's filename extension implies.
func (cl Loader) Kind() Kind {
	switch strings.ToUpper(path.Ext(cl.Filename)) {
	case ".CRT":
		return KindCartridge
	case ".D64":
		return KindDisk
	case ".PRG":
		return KindProgram
	case ".T64":
		return KindTape
	}
	return KindUnknown
}
