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

package random_test

import (
	"testing"

	"github.com/jetsetilly/pushpop/random"
	"github.com/jetsetilly/pushpop/test"
)

type clock struct {
	cycle int
}

func (c *clock) Cycle() int {
	return c.cycle
}

func TestRandom(t *testing.T) {
	c := &clock{}
	a := random.NewRandom(c, 0)
	b := random.NewRandom(c, 0)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		c.cycle = i
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestRange(t *testing.T) {
	c := &clock{}
	a := random.NewRandom(c, 1)

	for i := range 256 {
		c.cycle = i
		v := a.Intn(4)
		test.ExpectSuccess(t, v >= 0 && v < 4)
	}

	test.ExpectEquality(t, a.Intn(0), 0)
	test.ExpectEquality(t, a.Intn(-1), 0)
}
