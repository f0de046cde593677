// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

//go:build assertions

package test

import (
	"sync"

	"github.com/c64ensemble/c64/assert"
)

var (
	mainThreadOnce sync.Once
	mainThreadID   uint64
)

// AssertMainThread panics if it is not called from the same goroutine as the
// first call to AssertMainThread. The first caller is assumed to be running
// on the main thread.
func AssertMainThread() {
	id := assert.GetGoRoutineID()
	mainThreadOnce.Do(func() { mainThreadID = id })
	if id != mainThreadID {
		panic("test.AssertMainThread: called from the wrong goroutine")
	}
}

// AssertNonMainThread panics if it is called from the goroutine established
// by AssertMainThread. It does nothing if AssertMainThread has not yet been
// called by anybody.
func AssertNonMainThread() {
	if mainThreadID != 0 && assert.GetGoRoutineID() == mainThreadID {
		panic("test.AssertNonMainThread: called from the main goroutine")
	}
}
