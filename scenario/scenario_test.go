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

package scenario_test

import (
	"testing"

	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/driver"
	"github.com/jetsetilly/pushpop/scenario"
	"github.com/jetsetilly/pushpop/test"
)

func TestParseQueue(t *testing.T) {
	q, err := scenario.ParseQueue("5, 0x10 POP\tpop,0b11", 32)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.String(), "[push(5) push(16) pop pop push(3)]")

	q, err = scenario.ParseQueue("", 32)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(q), 0)

	q, err = scenario.ParseQueue(" , ,", 32)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(q), 0)

	_, err = scenario.ParseQueue("5 push 6", 32)
	test.ExpectSuccess(t, curated.Is(err, scenario.BadToken))

	_, err = scenario.ParseQueue("-1", 32)
	test.ExpectSuccess(t, curated.Is(err, scenario.BadToken))

	_, err = scenario.ParseQueue("256", 8)
	test.ExpectSuccess(t, curated.Is(err, scenario.ValueTooWide))

	_, err = scenario.ParseQueue("255", 8)
	test.ExpectSuccess(t, err)

	_, err = scenario.ParseQueue("0xffffffffffffffff", 64)
	test.ExpectSuccess(t, err)

	_, err = scenario.ParseQueue("0x1ffffffffffffffff", 64)
	test.ExpectSuccess(t, curated.Is(err, scenario.ValueTooWide))

	// widths outside of 1 to 64 bits are rejected whatever the queue
	for _, w := range []int{-1, 0, 65} {
		_, err = scenario.ParseQueue("5", w)
		test.ExpectSuccess(t, curated.Is(err, scenario.InvalidWidth), w)
		_, err = scenario.ParseQueue("pop", w)
		test.ExpectSuccess(t, curated.Is(err, scenario.InvalidWidth), w)
	}
}

func TestFormat(t *testing.T) {
	q := driver.Queue{driver.Push(1), driver.Pop(), driver.Push(0xff)}
	s := scenario.FormatQueue(q)
	test.ExpectEquality(t, s, "1 pop 255")

	p, err := scenario.ParseQueue(s, 8)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), q.String())

	test.ExpectEquality(t, scenario.FormatResults([]uint64{4, 5}), "4 5")
	r, err := scenario.ParseResults("4 5")
	test.ExpectSuccess(t, err)
	test.ExpectSlice(t, r, []uint64{4, 5})

	r, err = scenario.ParseResults("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(r), 0)
}

func TestRunAndCheck(t *testing.T) {
	sc := scenario.NewScenario("example", driver.Queue{driver.Push(5), driver.Pop()}, nil)
	sc.ExpectA = []uint64{5}
	sc.ExpectB = []uint64{}

	out, err := sc.Run()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, sc.Check(out))
	test.ExpectEquality(t, out.Cycles, 5)
	test.ExpectEquality(t, len(out.Digest), 40)

	// running again produces the same digest
	again, err := sc.Run()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, again.Digest, out.Digest)

	// a slower device produces the same results but a different digest
	slow := sc
	slow.Device.ResponseLatency = 3
	slowOut, err := slow.Run()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, slow.Check(slowOut))
	test.ExpectInequality(t, slowOut.Digest, out.Digest)

	wrong := sc
	wrong.ExpectA = []uint64{6}
	test.ExpectSuccess(t, curated.Is(wrong.Check(out), scenario.Mismatch))
}

func TestTimedOut(t *testing.T) {
	sc := scenario.NewScenario("slow", driver.Queue{driver.Push(1), driver.Pop()}, nil)
	sc.MaxCycles = 2

	out, err := sc.Run()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, out.TimedOut)
	test.ExpectSuccess(t, curated.Is(sc.Check(out), scenario.TimedOut))
}
