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

package peripherals

// Joystick direction/fire bits, active low on the CIA port they are
// wired to (up, down, left, right, fire).
const (
	JoyUp uint8 = 1 << iota
	JoyDown
	JoyLeft
	JoyRight
	JoyFire
)

// Joystick is a single digital joystick's currently-held directions and
// fire button, reported active-low the way the CIA port sees it.
type Joystick struct {
	held uint8
}

// NewJoystick returns a joystick with no direction or button held.
func NewJoystick() *Joystick { return &Joystick{} }

// Set updates the joystick's held bits (JoyUp|JoyLeft, etc, active-high
// in this call's own argument).
func (j *Joystick) Set(bits uint8) { j.held = bits }

// PortBits reports the active-low byte the CIA port sees on the pins
// this joystick is wired to.
func (j *Joystick) PortBits() uint8 { return ^j.held & 0x1f }
