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

// Package preferences stores the small set of values that affect how the
// machine behaves but which are not part of the architecture proper: power-on
// RAM state, the default VIC-II model, drive sound, and similar tunables.
// Everything in this package is persisted by prefs.Disk.
package preferences

import (
	"math/rand"

	"github.com/c64ensemble/c64/curated"
	"github.com/c64ensemble/c64/hardware/clocks"
	"github.com/c64ensemble/c64/paths"
	"github.com/c64ensemble/c64/prefs"
)

// Preferences exposes every user-facing tunable for the emulated machine.
type Preferences struct {
	dsk *prefs.Disk

	// RandomState controls whether RAM is seeded with a chequerboard pattern
	// (false, the hardware-accurate default) or with random noise (true) on
	// power-on.
	RandomState prefs.Bool

	// RandomPins controls whether undriven data-bus reads return the most
	// recently driven value (false) or random noise (true).
	RandomPins prefs.Bool

	// RandSrc is seeded by Reseed() and consulted when RandomState is in
	// effect. RandomPins draws from the environment's Random instead.
	RandSrc  *rand.Rand
	RandSeed int64

	// Model is the default VIC-II model (and hence NTSC/PAL timing and TOD
	// rate) used when a cartridge or disk image does not otherwise specify
	// one.
	Model prefs.Generic

	// WarpOnLoad is registered and saved with the other preferences. Nothing
	// in this module reads it: warp mode changes only through C64.SetWarp,
	// and a drive load does not enable it.
	WarpOnLoad prefs.Bool

	// RealTimePacingSlack is registered and saved (default 0.1). Nothing in
	// this module reads it.
	RealTimePacingSlack prefs.Float

	// AudioResampleQuality is registered and saved (default "medium").
	// Nothing in this module reads it: the SID has one fixed resampler.
	AudioResampleQuality prefs.String

	// DriveSound is registered and saved (default true). Nothing in this
	// module reads it, and no drive sound is produced.
	DriveSound prefs.Bool
}

func resourcePath() (string, error) {
	return paths.ResourcePath("prefs")
}

func modelFromString() (func() prefs.Value, func(prefs.Value) error) {
	current := clocks.PAL.String()
	get := func() prefs.Value {
		return current
	}
	set := func(v prefs.Value) error {
		s := v.(string)
		if _, err := clocks.ModelFromString(s); err != nil {
			return err
		}
		current = s
		return nil
	}
	return get, set
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The backing file is not read until Load() is called.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.Reseed(int64(0))

	get, set := modelFromString()
	p.Model = *prefs.NewGeneric(set, get)

	pth, err := resourcePath()
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	if err := p.dsk.Add("hardware.randstate", &p.RandomState); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("hardware.randpins", &p.RandomPins); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("hardware.model", &p.Model); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("hardware.warponload", &p.WarpOnLoad); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("hardware.pacingslack", &p.RealTimePacingSlack); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("hardware.resamplequality", &p.AudioResampleQuality); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("hardware.drivesound", &p.DriveSound); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.RealTimePacingSlack.Set(0.1)
	p.AudioResampleQuality.Set("medium")
	p.DriveSound.Set(true)

	if err := p.Load(); err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	return p, nil
}

// Reseed the preference's random source. A seed of zero is replaced by
// one.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		seed = int64(1)
	}
	p.RandSeed = seed
	p.RandSrc = rand.New(rand.NewSource(seed))
}

// Load preference values from disk. A missing file returns an error matching
// prefs.NoPrefsFile and leaves the values already set in effect;
// NewPreferences() treats that error as success.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
