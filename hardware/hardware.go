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
	"time"

	"github.com/c64ensemble/c64/curated"
	"github.com/c64ensemble/c64/environment"
	"github.com/c64ensemble/c64/hardware/cia"
	"github.com/c64ensemble/c64/hardware/clocks"
	"github.com/c64ensemble/c64/hardware/cpu"
	"github.com/c64ensemble/c64/hardware/drive"
	"github.com/c64ensemble/c64/hardware/iec"
	"github.com/c64ensemble/c64/hardware/memory"
	"github.com/c64ensemble/c64/hardware/memory/cartridge"
	"github.com/c64ensemble/c64/hardware/peripherals"
	"github.com/c64ensemble/c64/hardware/sid"
	"github.com/c64ensemble/c64/hardware/vic"
)

// ROMs bundles the four fixed images every C64 needs to power on: the
// three main-side mask ROMs and the VC1541's own DOS ROM (needed only if
// a drive is attached).
type ROMs struct {
	Basic  []byte
	Kernal []byte
	Char   []byte
	Drive  []byte
}

// driveSlot is one attached VC1541: the drive itself, whether its motor
// circuit is powered (a drive with no disk and its LED off still needs
// its CPU running, since the kernal polls its IEC handshake), and the
// running cycle debt used to keep its independent ~1MHz clock in step
// with the main side's, since the two run at slightly different rates
// and the drive's CPU only ever executes whole instructions per call.
type driveSlot struct {
	drive   *drive.Drive
	powerOn bool
	debt    int
}

// C64 is the root of one emulated machine: everything power-cycles and
// snapshots together.
type C64 struct {
	Spec clocks.Spec

	// Env carries this machine's randomiser and persisted preferences,
	// threaded down into the CPU (register randomisation on reset) and
	// consulted by Reset for the RAM power-on pattern and by ColorRead
	// for the floating top nibble.
	Env *environment.Environment

	Mem  *memory.Memory
	CPU  *cpu.CPU
	VIC  *vic.VIC
	CIA1 *cia.CIA
	CIA2 *cia.CIA
	SID  *sid.SID

	Keyboard  *peripherals.Keyboard
	Joystick1 *peripherals.Joystick
	Joystick2 *peripherals.Joystick

	IEC        *iec.Bus
	cia2Device *iec.Device

	drives []*driveSlot

	cart cartridge.CartMapper

	vicIRQ bool

	cycleCount uint64

	// lastFrame/todAccum drive the end-of-frame duties out of cycleCallback:
	// lastFrame detects the cycle on which VIC.Frame() has just advanced,
	// and todAccum counts frames since the last tenth-of-a-second TOD tick,
	// since the VIC frame rate (50/60 Hz) is faster than the TOD rate
	// (10 Hz) both CIAs share.
	lastFrame uint64
	todAccum  int

	warp       bool
	paceTicker *time.Ticker
}

// New constructs a fully wired, freshly reset C64. spec selects PAL or
// NTSC timing; at least Basic/Kernal/Char ROMs must be supplied non-empty.
// A drive ROM may be omitted if no VC1541 will ever be attached.
func New(spec clocks.Spec, roms ROMs) (*C64, error) {
	mem, err := memory.NewMemory(roms.Basic, roms.Char, roms.Kernal)
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	c := &C64{
		Spec:      spec,
		Mem:       mem,
		CIA1:      cia.New(),
		CIA2:      cia.New(),
		SID:       sid.New(int(spec.CPUHz())),
		Keyboard:  peripherals.NewKeyboard(),
		Joystick1: peripherals.NewJoystick(),
		Joystick2: peripherals.NewJoystick(),
		IEC:       iec.New(),
	}
	c.cia2Device = c.IEC.Attach()

	env, err := environment.NewEnvironment(c, nil)
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}
	c.Env = env

	c.CPU = cpu.NewCPU(mem, func() uint8 { return uint8(c.Env.Random.Intn(256)) })
	c.VIC = vic.New(spec, mem, c)
	mem.AttachIO(c)

	if len(roms.Drive) > 0 {
		if err := c.AttachDrive(roms.Drive); err != nil {
			return nil, err
		}
	}

	if err := c.Reset(); err != nil {
		return nil, err
	}
	return c, nil
}

// AttachDrive wires a new VC1541 onto the shared IEC bus, powered on by
// default.
func (c *C64) AttachDrive(rom []byte) error {
	d, err := drive.New(rom, c.IEC)
	if err != nil {
		return curated.Errorf("hardware: %v", err)
	}
	c.drives = append(c.drives, &driveSlot{drive: d, powerOn: true})
	return d.Reset()
}

// Drive returns the index'th attached drive, or nil if none is attached
// at that index.
func (c *C64) Drive(index int) *drive.Drive {
	if index < 0 || index >= len(c.drives) {
		return nil
	}
	return c.drives[index].drive
}

// AttachCartridge inserts (or, given nil, removes) a cartridge into the
// expansion port and resets the machine, matching real hardware's
// behaviour of only recognising a cartridge at power-on/reset.
func (c *C64) AttachCartridge(cart cartridge.CartMapper) error {
	c.cart = cart
	c.Mem.AttachCartridge(cart)
	return c.Reset()
}

// Reset pulls the machine's RESET line: the CPU, both CIAs and the VIC
// return to their power-on state, and any attached cartridge's own
// Reset() is invoked. Drives are not reset here — the IEC cable does not
// carry a shared reset in this model, matching the real bus, where a
// 1541 only resets from its own power switch.
func (c *C64) Reset() error {
	c.seedRAM()
	c.CIA1.Reset()
	c.CIA2.Reset()
	c.VIC.Reset()
	if c.cart != nil {
		c.cart.Reset()
	}
	c.vicIRQ = false
	c.todAccum = 0
	return c.CPU.Reset()
}

// seedRAM re-initialises RAM on every reset, matching the 6510's
// power-on/reset behaviour rather than leaving it zeroed. Preferences
// select between the hardware-accurate chequerboard pattern and random
// noise; the latter is useful for shaking out programs that accidentally
// depend on uninitialised memory being zero.
func (c *C64) seedRAM() {
	randomise := false
	if c.Env != nil {
		randomise, _ = c.Env.Prefs.RandomState.Get().(bool)
	}
	var rnd func() uint8
	if randomise && c.Env != nil {
		rnd = func() uint8 { return uint8(c.Env.Prefs.RandSrc.Intn(256)) }
	}
	c.Mem.SeedRAM(randomise, rnd)
}

// CycleCount implements random.Clock.
func (c *C64) CycleCount() int64 { return int64(c.cycleCount) }

// SetWarp enables or disables real-time pacing: in warp mode Run never
// sleeps to match wall-clock frame time.
func (c *C64) SetWarp(on bool) { c.warp = on }
func (c *C64) Warp() bool      { return c.warp }

// endOfFrame performs the machine-level duties the end of a VIC-II frame
// triggers: advancing both CIAs' time-of-day clocks at the power-line
// frequency their TOD-rate bit is wired to, and, unless running in warp
// mode, pacing the emulation against wall-clock time.
func (c *C64) endOfFrame() {
	c.todAccum++
	if ticksPerTOD := c.Spec.TODHz / 10; c.todAccum >= ticksPerTOD {
		c.todAccum -= ticksPerTOD
		c.CIA1.TickTOD()
		c.CIA2.TickTOD()
	}

	if !c.warp {
		c.pace()
	}
}

// pace blocks until the next frame is due, matching spec's real-time sync
// requirement. The ticker is created lazily, on first use, so machines
// that never leave warp mode (tests, benchmarks, headless batch runs)
// never pay for one.
func (c *C64) pace() {
	if c.paceTicker == nil {
		c.paceTicker = time.NewTicker(time.Duration(float64(time.Second) / c.Spec.FramesPerSecond))
	}
	<-c.paceTicker.C
}

// SetIRQ implements vic.CPU: the VIC-II's raster/collision interrupts
// share the CPU's IRQ line with CIA1's timers, so this only records the
// VIC's own contribution before recomputing the wire-OR of every source.
func (c *C64) SetIRQ(asserted bool) {
	c.vicIRQ = asserted
	c.updateIRQ()
}

func (c *C64) updateIRQ() {
	c.CPU.SetIRQ(c.vicIRQ || c.CIA1.IRQ())
}
