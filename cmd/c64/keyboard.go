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
	"time"

	"github.com/pkg/term"
	xterm "golang.org/x/term"

	"github.com/c64ensemble/c64/hardware/peripherals"
	"github.com/c64ensemble/c64/logger"
)

// keyHoldTime is how long a terminal keystroke is held in the matrix
// before being released, long enough for the kernal's keyboard-scan ISR
// (which polls at roughly 60Hz) to observe it at least once.
const keyHoldTime = 30 * time.Millisecond

// keyboardInput puts stdin into raw mode (when it is a real terminal) and
// forwards every rune it reads to keyboard's 8x8 matrix via
// peripherals.KeyForRune, until closed. It is the terminal front-end's
// substitute for the SDL keyboard event loop.
type keyboardInput struct {
	tty      *term.Term
	keyboard *peripherals.Keyboard
	quit     chan struct{}
}

// newKeyboardInput opens /dev/tty in raw mode. If stdin is not attached to
// a terminal (piped input, a CI job) it returns nil, nil: the caller runs
// without live keyboard injection rather than failing outright.
func newKeyboardInput(keyboard *peripherals.Keyboard) (*keyboardInput, error) {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		logger.Log(logger.Allow, "cmd/c64", "stdin is not a terminal, keyboard input disabled")
		return nil, nil
	}

	tty, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, err
	}

	k := &keyboardInput{
		tty:      tty,
		keyboard: keyboard,
		quit:     make(chan struct{}),
	}
	go k.run()
	return k, nil
}

func (k *keyboardInput) run() {
	buf := make([]byte, 1)
	for {
		select {
		case <-k.quit:
			return
		default:
		}

		n, err := k.tty.Read(buf)
		if err != nil || n == 0 {
			return
		}

		r := rune(buf[0])
		row, col, shift, ok := peripherals.KeyForRune(r)
		if !ok {
			continue
		}

		if shift {
			sr, sc := peripherals.ShiftPosition()
			k.keyboard.Press(sr, sc)
		}
		k.keyboard.Press(row, col)

		// A terminal only ever reports a key down; synthesize an up event
		// after a short hold instead.
		go func(row, col int, shift bool) {
			time.Sleep(keyHoldTime)
			k.keyboard.Release(row, col)
			if shift {
				sr, sc := peripherals.ShiftPosition()
				k.keyboard.Release(sr, sc)
			}
		}(row, col, shift)
	}
}

// Close restores the terminal to cooked mode and stops the read loop.
func (k *keyboardInput) Close() error {
	if k == nil {
		return nil
	}
	close(k.quit)
	k.tty.Restore()
	return k.tty.Close()
}
