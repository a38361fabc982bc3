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

package waveform

import (
	"testing"

	"github.com/jetsetilly/pushpop/test"
)

func TestIdentifier(t *testing.T) {
	test.ExpectEquality(t, identifier(0), "!")
	test.ExpectEquality(t, identifier(1), "\"")
	test.ExpectEquality(t, identifier(93), "~")
	test.ExpectEquality(t, identifier(94), "!!")
	test.ExpectEquality(t, identifier(95), "\"!")

	seen := make(map[string]bool)
	for i := range 1000 {
		id := identifier(i)
		test.ExpectFailure(t, seen[id], i)
		seen[id] = true
	}
}
