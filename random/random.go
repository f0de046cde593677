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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is satisfied by anything that can report how many main-side CPU
// cycles have elapsed since the machine was last reset. The scheduler
// implements this; Random uses it rather than any TV-specific coordinate
// system so that it has no dependency on the display pipeline.
type Clock interface {
	CycleCount() int64
}

// Random is a random number generator that is sensitive to elapsed machine
// time. Required so that rewinding/stepping through a deterministic run
// reproduces the same sequence of random numbers it produced the first time.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	var cycles int64
	if rnd.clock != nil {
		cycles = rnd.clock.CycleCount()
	}

	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(cycles))
	}
	return rand.New(rand.NewSource(baseSeed + cycles))
}

// Intn returns, as an int, a non-negative pseudo-random number in [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
