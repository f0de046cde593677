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

// Package cartridgeloader fetches media (cartridge, disk or tape images) from
// a file or HTTP(S) URL and, for cartridges, parses the CRT container into
// the hardware/memory/cartridge.CartMapper the expansion port expects.
//
// When the media is ready to be attached, the Load() function should be
// used; it handles fetching the raw bytes from either a local file or a
// URL and records a SHA1 hash of what it fetched. Cartridge() then parses
// a loaded CRT image into a concrete CartMapper.
package cartridgeloader
