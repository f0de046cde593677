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

package test_test

import (
	"testing"

	"github.com/c64ensemble/c64/test"
)

// without the "assertions" build tag these are no-ops, so the worst that can
// happen here is nothing
func TestAssertMainThreadDoesNotPanicOnFirstCaller(t *testing.T) {
	test.AssertMainThread()
}

func TestAssertNonMainThreadFromGoroutine(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		test.AssertNonMainThread()
	}()
	<-done
}
