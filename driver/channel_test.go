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

package driver_test

import (
	"testing"

	"github.com/jetsetilly/pushpop/driver"
	"github.com/jetsetilly/pushpop/hardware/signals"
	"github.com/jetsetilly/pushpop/hardware/sim"
	"github.com/jetsetilly/pushpop/test"
)

// a simulator with the signals of one channel but no model. the test plays
// the part of the device by writing the device side signals directly
func newBareChannel(t *testing.T) (*sim.Simulator, *driver.Channel) {
	t.Helper()

	s := sim.NewSimulator()
	for r := signals.Role(0); r < signals.NumRoles; r++ {
		w := 1
		if r == signals.InData || r == signals.OutData {
			w = 16
		} else if r == signals.InCmd || r == signals.OutCmd {
			w = 3
		}
		_, err := s.Declare(signals.Name(r, 0), w)
		test.DemandSuccess(t, err)
	}

	port, err := signals.NewPort(s, 0)
	test.DemandSuccess(t, err)

	return s, driver.NewChannel("A", port)
}

func TestChannelTransitions(t *testing.T) {
	_, ch := newBareChannel(t)
	port := ch.Port()

	test.ExpectSuccess(t, ch.IsIdle())
	test.ExpectFailure(t, ch.IsBusy())

	ch.Load(driver.Queue{driver.Push(0x55), driver.Pop()})
	test.ExpectFailure(t, ch.IsIdle())
	test.ExpectFailure(t, ch.IsBusy())
	test.ExpectEquality(t, ch.Pending(), 2)

	// first step dequeues the push and offers it in the same cycle
	ch.Step()
	test.ExpectEquality(t, ch.State(), driver.CommandSent)
	test.ExpectEquality(t, port.InValid.Read(), uint64(1))
	test.ExpectEquality(t, port.InCmd.Read(), signals.CmdPush)
	test.ExpectEquality(t, port.InData.Read(), uint64(0x55))
	test.ExpectEquality(t, ch.Pending(), 1)

	// nothing happens until the device is ready
	ch.Step()
	ch.Step()
	test.ExpectEquality(t, ch.State(), driver.CommandSent)
	test.ExpectEquality(t, port.InValid.Read(), uint64(1))

	port.InReady.Write(1)
	ch.Step()
	test.ExpectEquality(t, ch.State(), driver.AwaitingResponse)
	test.ExpectEquality(t, port.InValid.Read(), uint64(0))
	test.ExpectEquality(t, port.OutReady.Read(), uint64(1))
	port.InReady.Write(0)

	// push acknowledgement. any opcode other than RespPop is not recorded
	port.OutValid.Write(1)
	port.OutCmd.Write(2)
	ch.Step()
	port.OutValid.Write(0)
	test.ExpectEquality(t, port.OutReady.Read(), uint64(0))

	// the pop is offered in the same cycle that the push completed
	test.ExpectEquality(t, ch.State(), driver.CommandSent)
	test.ExpectEquality(t, port.InCmd.Read(), signals.CmdPop)
	test.ExpectEquality(t, port.InData.Read(), uint64(0))
	test.ExpectEquality(t, len(ch.Results()), 0)

	port.InReady.Write(1)
	ch.Step()
	port.InReady.Write(0)
	test.ExpectEquality(t, ch.State(), driver.AwaitingResponse)
	test.ExpectFailure(t, ch.IsIdle())

	port.OutValid.Write(1)
	port.OutCmd.Write(signals.RespPop)
	port.OutData.Write(0x55)
	ch.Step()
	port.OutValid.Write(0)

	test.ExpectEquality(t, ch.State(), driver.Idle)
	test.ExpectSuccess(t, ch.IsIdle())
	test.ExpectSlice(t, ch.Results(), []uint64{0x55})

	// an idle channel with nothing queued does nothing
	ch.Step()
	test.ExpectEquality(t, ch.State(), driver.Idle)
	test.ExpectEquality(t, port.InValid.Read(), uint64(0))
}

func TestChannelReset(t *testing.T) {
	_, ch := newBareChannel(t)
	port := ch.Port()

	ch.Load(driver.Queue{driver.Pop(), driver.Pop()})
	ch.Step()
	port.InReady.Write(1)
	ch.Step()
	test.ExpectEquality(t, ch.State(), driver.AwaitingResponse)

	ch.Reset()
	test.ExpectSuccess(t, ch.IsIdle())
	test.ExpectEquality(t, ch.Pending(), 0)
	test.ExpectEquality(t, len(ch.Results()), 0)

	// reset does not touch the signals
	test.ExpectEquality(t, port.OutReady.Read(), uint64(1))

	// reset is idempotent
	ch.Reset()
	test.ExpectSuccess(t, ch.IsIdle())
}

func TestChannelLoadCopiesQueue(t *testing.T) {
	_, ch := newBareChannel(t)

	q := driver.Queue{driver.Push(1), driver.Push(2)}
	ch.Load(q)
	ch.Step()

	test.ExpectEquality(t, len(q), 2)
	test.ExpectEquality(t, q[0].Data(), uint64(1))
	test.ExpectEquality(t, q[1].Data(), uint64(2))
}

func TestCommand(t *testing.T) {
	test.ExpectEquality(t, driver.Push(10).String(), "push(10)")
	test.ExpectEquality(t, driver.Pop().String(), "pop")
	test.ExpectSuccess(t, driver.Pop().IsPop())
	test.ExpectFailure(t, driver.Push(0).IsPop())

	q := driver.Queue{driver.Push(1), driver.Pop(), driver.Pop()}
	test.ExpectEquality(t, q.Pops(), 2)
	test.ExpectEquality(t, q.String(), "[push(1) pop pop]")
}
