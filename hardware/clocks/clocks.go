// Package clocks defines the timing specification of each supported VIC-II
// variant. The rest of the emulation reads these constants rather than
// hard-coding PAL/NTSC assumptions, so that switching models only ever
// requires a Reset.
//
// Values taken from the standard community reference ("the 64doc" /
// www.zimmers.net/cbmpics/cbm/c64/vic-ii.txt timing tables).
package clocks

import "fmt"

// Model identifies one of the six VIC-II silicon revisions this emulation
// distinguishes. Two models can share a Spec (e.g. 6567R8 and 8562) but are
// kept distinct because cartridge/ROM detection code sometimes keys off the
// exact chip name.
type Model int

const (
	PAL6569R1 Model = iota
	PAL6569R3
	PAL8565
	NTSC6567R56A
	NTSC6567R8
	NTSC8562
)

func (m Model) String() string {
	switch m {
	case PAL6569R1:
		return "6569R1 (PAL)"
	case PAL6569R3:
		return "6569R3 (PAL)"
	case PAL8565:
		return "8565 (PAL)"
	case NTSC6567R56A:
		return "6567R56A (NTSC-old)"
	case NTSC6567R8:
		return "6567R8 (NTSC)"
	case NTSC8562:
		return "8562 (NTSC)"
	}
	return "unknown"
}

// PAL reports whether the model belongs to the PAL family.
func (m Model) PAL() bool {
	switch m {
	case PAL6569R1, PAL6569R3, PAL8565:
		return true
	}
	return false
}

// ModelFromString parses the String() representation of a Model back into
// its value. It is used by the preferences system, which stores the model
// selection as a plain string.
func ModelFromString(s string) (Model, error) {
	for m := range Specs {
		if m.String() == s {
			return m, nil
		}
	}
	return PAL, fmt.Errorf("clocks: unrecognised model %q", s)
}

// PAL is the default model used when nothing else has been specified.
const PAL = PAL6569R3

// Spec is the timing specification that a VIC-II model implies for the rest
// of the ensemble: how many cycles make up a rasterline, how many
// rasterlines make up a frame, where the visible window sits, and how the
// CIA TOD clocks should run.
type Spec struct {
	Model Model

	// CyclesPerLine is the number of CPU/VIC cycles in one rasterline. Old
	// NTSC VIC-IIs insert an extra cycle on every other line to keep the
	// colour subcarrier phase-locked; for that model LongLines is set.
	CyclesPerLine int

	// LongLines is true for NTSC6567R56A only: each odd-numbered rasterline
	// then runs one cycle longer than CyclesPerLine. False for every other
	// model.
	LongLines bool

	LinesPerFrame int

	// FirstVisibleLine/LastVisibleLine bound the rasterlines that the pixel
	// pipeline actually emits into the frame buffer; everything outside is
	// vertical blank/border overscan that VIC still cycles through.
	FirstVisibleLine int
	LastVisibleLine  int

	// ColorClockHz is the VIC dot clock; CPU/VIC cycles run at ColorClockHz/8.
	ColorClockHz float64

	// TODHz is the power-line frequency the CIA time-of-day counters are
	// wired to (50 for PAL territories, 60 for NTSC).
	TODHz int

	// FramesPerSecond is the nominal refresh rate used for real-time pacing.
	FramesPerSecond float64
}

// CPUHz is the main clock rate in Hz: one CPU cycle per rasterline cycle.
func (s Spec) CPUHz() float64 {
	return s.ColorClockHz / 8
}

// Specs holds the canonical Spec for every supported Model.
var Specs = map[Model]Spec{
	PAL6569R1: {
		Model: PAL6569R1, CyclesPerLine: 63, LinesPerFrame: 312,
		FirstVisibleLine: 14, LastVisibleLine: 298,
		ColorClockHz: 17734472, TODHz: 50, FramesPerSecond: 50.125,
	},
	PAL6569R3: {
		Model: PAL6569R3, CyclesPerLine: 63, LinesPerFrame: 312,
		FirstVisibleLine: 14, LastVisibleLine: 298,
		ColorClockHz: 17734472, TODHz: 50, FramesPerSecond: 50.125,
	},
	PAL8565: {
		Model: PAL8565, CyclesPerLine: 63, LinesPerFrame: 312,
		FirstVisibleLine: 14, LastVisibleLine: 298,
		ColorClockHz: 17734472, TODHz: 50, FramesPerSecond: 50.125,
	},
	NTSC6567R56A: {
		Model: NTSC6567R56A, CyclesPerLine: 64, LongLines: true, LinesPerFrame: 262,
		FirstVisibleLine: 6, LastVisibleLine: 251,
		ColorClockHz: 14318180, TODHz: 60, FramesPerSecond: 59.826,
	},
	NTSC6567R8: {
		Model: NTSC6567R8, CyclesPerLine: 65, LinesPerFrame: 263,
		FirstVisibleLine: 6, LastVisibleLine: 251,
		ColorClockHz: 14318180, TODHz: 60, FramesPerSecond: 59.826,
	},
	NTSC8562: {
		Model: NTSC8562, CyclesPerLine: 65, LinesPerFrame: 263,
		FirstVisibleLine: 6, LastVisibleLine: 251,
		ColorClockHz: 14318180, TODHz: 60, FramesPerSecond: 59.826,
	},
}

// DriveCPUHz is the VC1541's own fixed clock; it does not vary with the
// host model and runs independently of the main side's color clock.
const DriveCPUHz = 1000000

// PicosecondsPerDriveCycle is how many picoseconds of wall-clock time one
// VC1541 CPU cycle represents, used by the scheduler to accumulate drive
// time against the (model-dependent) duration of a main-side cycle.
const PicosecondsPerDriveCycle = 1000000000000 / DriveCPUHz
