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

package test

import (
	"fmt"
	"strings"
)

// id turns the optional tags accepted by the Demand/Expect functions into a
// prefix for a failure message, so a caller can note which sub-value of a
// larger comparison (a register name, a RAM address) is under test.
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, tg := range tags {
		parts[i] = fmt.Sprint(tg)
	}
	return strings.Join(parts, " ") + ": "
}

// expect reduces a value to a plain pass/fail bool, the shared decision
// logic behind ExpectedFailure/ExpectedSuccess and the Demand* functions.
func expect(t testingT, v any, tags ...any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
		return false
	}
}

// testingT is satisfied by *testing.T; kept narrow so expect() doesn't need
// to import testing twice across files that already do.
type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}
