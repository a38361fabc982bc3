// This file is part of Pushpop.
//
// Pushpop is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pushpop is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pushpop.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/test"
)

const testPattern = "test error: %s"
const wrapPattern = "wrapped: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("driver: %v", curated.Errorf("driver: channel stalled"))
	test.ExpectEquality(t, e.Error(), "driver: channel stalled")

	e = curated.Errorf("error: %v", curated.Errorf("error: %v", curated.Errorf("not yet implemented")))
	test.ExpectEquality(t, e.Error(), "error: not yet implemented")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))
}

func TestPlainErrors(t *testing.T) {
	e := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.Is(e, "plain error"))
	test.ExpectFailure(t, curated.Has(e, "plain error"))
	test.ExpectFailure(t, curated.IsAny(nil))
}
