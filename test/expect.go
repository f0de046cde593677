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

import "testing"

// ExpectFailure is a present-tense alias for ExpectedFailure, for callers
// that read more naturally as "expect this call to fail".
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()
	return ExpectedFailure(t, v)
}

// ExpectSuccess is a present-tense alias for ExpectedSuccess.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()
	return ExpectedSuccess(t, v)
}

// ExpectEquality is a non-fatal, tag-annotated equality test: on mismatch it
// records a test failure with t.Errorf and lets the test continue, which
// suits table-driven tests that want to report every mismatching field
// rather than stopping at the first one.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is the complement of ExpectEquality.
func ExpectInequality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v == expectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' equals '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectApproximate checks that v is within tolerance of expectedValue,
// for comparisons (resampled audio levels, timing ratios) where exact
// equality isn't meaningful.
func ExpectApproximate(t *testing.T, v, expectedValue, tolerance float64, tags ...any) bool {
	t.Helper()
	diff := v - expectedValue
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		t.Errorf("%sapproximate equality test failed: %v is not within %v of %v", id(tags...), v, tolerance, expectedValue)
		return false
	}
	return true
}
