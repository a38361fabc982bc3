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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock implementations report the current simulation cycle.
type Clock interface {
	Cycle() int
}

// Random is a random number generator that is sensitive to time within the
// simulation.
type Random struct {
	clock Clock
	salt  int64

	// use zero seed rather than the random base seed
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock, salt int) *Random {
	return &Random{
		clock: clock,
		salt:  int64(salt),
	}
}

// new RNG from the standard library seeded by the current cycle
func (rnd *Random) rand() *rand.Rand {
	seed := int64(rnd.clock.Cycle())*7919 + rnd.salt
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Intn returns a number in the range [0,n) for the current cycle. A value of
// n less than or equal to zero always returns zero.
func (rnd *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rnd.rand().Intn(n)
}
