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
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/c64ensemble/c64/hardware"
)

var (
	statusLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusOn    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	statusOff   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusWarp  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// statusLine renders one line summarising the running machine: frame
// count, warp state, and (if a drive is attached) its track/motor/LED,
// styled with lipgloss the way a terminal front-end without a graphical
// drive-LED can still surface what the hardware is doing.
func statusLine(c *hardware.C64) string {
	frame := fmt.Sprintf("%s %d", statusLabel.Render("frame"), c.VIC.Frame())

	warp := statusOff.Render("warp off")
	if c.Warp() {
		warp = statusWarp.Render("WARP")
	}

	line := frame + "  " + warp

	if d := c.Drive(0); d != nil {
		motor := statusOff.Render("motor off")
		if d.Motor() {
			motor = statusOn.Render("motor on")
		}
		led := statusOff.Render("led off")
		if d.LED() {
			led = statusOn.Render("LED")
		}
		line += fmt.Sprintf("  %s track %d  %s  %s", statusLabel.Render("drive"), d.Track(), motor, led)
	}

	return line
}

func printStatus(w io.Writer, c *hardware.C64) {
	fmt.Fprintf(w, "\r%s\033[K", statusLine(c))
}
