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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/pushpop/digest"
	"github.com/jetsetilly/pushpop/hardware/sim"
	"github.com/jetsetilly/pushpop/test"
)

func run(t *testing.T, values []uint64) string {
	t.Helper()

	s := sim.NewSimulator()
	a, err := s.Declare("a", 8)
	test.DemandSuccess(t, err)
	_, err = s.Declare("b", 1)
	test.DemandSuccess(t, err)

	dig := digest.NewSignals(s)
	s.AddObserver(dig)

	for _, v := range values {
		a.Write(v)
		s.Step(1)
	}

	return dig.Hash()
}

func TestChaining(t *testing.T) {
	h1 := run(t, []uint64{1, 2, 3})
	h2 := run(t, []uint64{1, 2, 3})
	test.ExpectEquality(t, h1, h2)

	// the same final state reached by a different route is a different
	// digest
	h3 := run(t, []uint64{2, 1, 3})
	test.ExpectInequality(t, h1, h3)

	// an extra cycle is a different digest
	h4 := run(t, []uint64{1, 2, 3, 3})
	test.ExpectInequality(t, h1, h4)
}

func TestReset(t *testing.T) {
	s := sim.NewSimulator()
	_, err := s.Declare("a", 8)
	test.DemandSuccess(t, err)

	dig := digest.NewSignals(s)
	zero := dig.Hash()
	test.ExpectEquality(t, len(zero), 40)

	s.AddObserver(dig)
	s.Step(5)
	test.ExpectInequality(t, dig.Hash(), zero)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), zero)
}
