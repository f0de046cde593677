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

package hardware

import (
	"github.com/c64ensemble/c64/curated"
	"github.com/c64ensemble/c64/emulation"
)

// Run sets the machine running as quickly as possible, one instruction at
// a time, until continueCheck reports emulation.Ending or returns an
// error. A nil continueCheck runs forever.
func (c *C64) Run(continueCheck func() (emulation.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (emulation.State, error) { return emulation.Running, nil }
	}

	state := emulation.Running
	for state != emulation.Ending {
		switch state {
		case emulation.Running, emulation.Stepping, emulation.Rewinding:
			if err := c.Step(); err != nil {
				return err
			}
		case emulation.Paused:
		default:
			return curated.Errorf("hardware: unsupported emulation state (%d) in Run()", state)
		}

		var err error
		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the machine for exactly numFrames VIC-II frames,
// useful for regression tests and benchmarking. continueCheck, if not
// nil, is consulted after every frame and may end the run early.
func (c *C64) RunForFrameCount(numFrames int, continueCheck func(frame int) (emulation.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(int) (emulation.State, error) { return emulation.Running, nil }
	}

	target := c.VIC.Frame() + uint64(numFrames)
	state := emulation.Running
	for c.VIC.Frame() != target && state != emulation.Ending {
		if err := c.Step(); err != nil {
			return err
		}

		var err error
		state, err = continueCheck(int(c.VIC.Frame()))
		if err != nil {
			return err
		}
	}

	return nil
}
