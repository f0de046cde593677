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

// Command c64 is a terminal harness for the chip ensemble: it loads a ROM
// set, optionally attaches a disk, cartridge or tape image, and runs the
// machine either headlessly or with raw-terminal keyboard input, printing
// a lipgloss status line as it goes.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/c64ensemble/c64/emulation"
	"github.com/c64ensemble/c64/hardware"
	"github.com/c64ensemble/c64/hardware/clocks"
	"github.com/c64ensemble/c64/logger"
	"github.com/c64ensemble/c64/modalflag"
	"github.com/c64ensemble/c64/statsview"
	"github.com/c64ensemble/c64/version"
	"github.com/c64ensemble/c64/wavwriter"
)

// Exit codes, per the CLI harness's external contract: 0 success, 1
// missing ROM, 2 bad image, 3 runtime trap.
const (
	exitSuccess = 0
	exitNoROM   = 1
	exitBadImage = 2
	exitTrap    = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, output *os.File) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)

	romdir := md.AddString("romdir", "roms", "directory holding basic.rom/kernal.rom/chargen.rom/1541.rom")
	tv := md.AddString("tv", "PAL", "television specification: PAL, PAL-OLD, PAL-8565, NTSC, NTSC-OLD, NTSC-8562")
	warp := md.AddBool("warp", false, "run flat out, ignoring real-time frame pacing")
	frames := md.AddInt("frames", 0, "stop after this many VIC-II frames (0 runs until interrupted)")
	snapshotOut := md.AddString("snapshot", "", "write a snapshot of machine state to this file on exit")
	snapshotIn := md.AddString("load-snapshot", "", "restore machine state from this file before running")
	wavPath := md.AddString("wav", "", "record SID output to this WAV file")
	dumpMemmap := md.AddString("dump-memmap", "", "write the current memory bank map to this Graphviz .dot file and exit")
	profile := md.AddBool("profile", false, "start the statsview live-stats dashboard")
	interactive := md.AddBool("keys", true, "forward terminal keystrokes to the C64 keyboard matrix")
	log := md.AddBool("log", false, "echo the debugging log to stdout")
	showVersion := md.AddBool("version", false, "print the version number and exit")

	result, err := md.Parse()
	switch result {
	case modalflag.ParseHelp:
		return exitSuccess
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitNoROM
	}

	if *showVersion {
		v, rev, release := version.Version()
		if release {
			fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, rev)
		} else {
			fmt.Fprintf(output, "%s %s, revision %s\n", version.ApplicationName, v, rev)
		}
		return exitSuccess
	}

	if *log {
		logger.SetEcho(output, true)
	}

	model, err := parseModel(*tv)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitBadImage
	}

	roms, err := loadROMSet(*romdir)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitNoROM
	}

	c, err := hardware.New(clocks.Specs[model], roms)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitNoROM
	}
	c.SetWarp(*warp)

	if *dumpMemmap != "" {
		if err := dumpMemoryMap(c.Mem, *dumpMemmap); err != nil {
			fmt.Fprintf(output, "* error: %v\n", err)
			return exitBadImage
		}
		fmt.Fprintf(output, "memory map written to %s\n", *dumpMemmap)
		return exitSuccess
	}

	if *snapshotIn != "" {
		data, err := os.ReadFile(*snapshotIn)
		if err != nil {
			fmt.Fprintf(output, "* error: %v\n", err)
			return exitBadImage
		}
		if err := c.Restore(data); err != nil {
			fmt.Fprintf(output, "* error: %v\n", err)
			return exitBadImage
		}
	}

	if len(md.RemainingArgs()) > 1 {
		fmt.Fprintf(output, "* error: only one disk/cartridge/tape image may be given\n")
		return exitBadImage
	}
	if len(md.RemainingArgs()) == 1 {
		if err := attachMedia(c, md.GetArg(0)); err != nil {
			fmt.Fprintf(output, "* error: %v\n", err)
			return exitBadImage
		}
	}

	var audio *wavwriter.WavWriter
	if *wavPath != "" {
		audio, err = wavwriter.New(*wavPath)
		if err != nil {
			fmt.Fprintf(output, "* error: %v\n", err)
			return exitBadImage
		}
		defer audio.Close()
	}

	if *profile {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "! -profile requested but this build was not compiled with the statsview tag")
		}
	}

	var keys *keyboardInput
	if *interactive {
		keys, err = newKeyboardInput(c.Keyboard)
		if err != nil {
			fmt.Fprintf(output, "! keyboard input unavailable: %v\n", err)
		}
	}
	defer keys.Close()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	interrupted := false
	go func() {
		<-intChan
		interrupted = true
	}()

	// Run() consults continueCheck after every CPU instruction, not once
	// per frame, so per-frame work (status line, audio drain) only
	// happens on the instruction where VIC.Frame() has actually ticked
	// over since the last check.
	sampleBuf := make([]int16, 4096)
	lastFrame := c.VIC.Frame()
	frameCount := 0
	runErr := c.Run(func() (emulation.State, error) {
		if interrupted {
			return emulation.Ending, nil
		}

		frame := c.VIC.Frame()
		if frame == lastFrame {
			return emulation.Running, nil
		}
		lastFrame = frame
		frameCount++

		if audio != nil {
			n := c.SID.ReadSamples(sampleBuf)
			if n > 0 {
				if err := audio.Write(sampleBuf[:n]); err != nil {
					return emulation.Ending, err
				}
			}
		}

		printStatus(output, c)

		if *frames > 0 && frameCount >= *frames {
			return emulation.Ending, nil
		}
		return emulation.Running, nil
	})
	fmt.Fprintln(output)

	if runErr != nil {
		fmt.Fprintf(output, "* runtime trap: %v\n", runErr)
		return exitTrap
	}

	if *snapshotOut != "" {
		if err := os.WriteFile(*snapshotOut, c.Snapshot(), 0o644); err != nil {
			fmt.Fprintf(output, "* error: %v\n", err)
			return exitBadImage
		}
	}

	return exitSuccess
}

func parseModel(name string) (clocks.Model, error) {
	switch name {
	case "PAL", "":
		return clocks.PAL6569R3, nil
	case "PAL-OLD":
		return clocks.PAL6569R1, nil
	case "PAL-8565":
		return clocks.PAL8565, nil
	case "NTSC":
		return clocks.NTSC6567R8, nil
	case "NTSC-OLD":
		return clocks.NTSC6567R56A, nil
	case "NTSC-8562":
		return clocks.NTSC8562, nil
	}
	return clocks.PAL, fmt.Errorf("unrecognised -tv value %q", name)
}
