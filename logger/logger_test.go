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

package logger_test

import (
	"testing"

	"github.com/c64ensemble/c64/logger"
	"github.com/c64ensemble/c64/test"
)

func TestLoggerCompareWriter(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.Equate(t, tw.Compare(""), true)

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.Equate(t, tw.Compare("test: this is a test\n"), true)

	// clear the buffer before continuing, makes comparisons easier to manage
	tw.Clear()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.Equate(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)
}

func TestWriteRecentOnlyReturnsNewEntries(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log(logger.Allow, "first", "one")
	logger.WriteRecent(tw)
	test.Equate(t, tw.Compare("first: one\n"), true)

	// a second call with no new entries in between should be empty
	tw.Clear()
	logger.WriteRecent(tw)
	test.Equate(t, tw.Compare(""), true)

	tw.Clear()
	logger.Log(logger.Allow, "second", "two")
	logger.WriteRecent(tw)
	test.Equate(t, tw.Compare("second: two\n"), true)
}

func TestBorrowLogSeesCurrentEntries(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "tag", "detail")

	var count int
	logger.BorrowLog(func(entries []logger.Entry) {
		count = len(entries)
	})
	test.Equate(t, count, 1)
}
