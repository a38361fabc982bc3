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

package fifo

import (
	"fmt"

	"github.com/jetsetilly/pushpop/hardware/signals"
	"github.com/jetsetilly/pushpop/random"
)

// channel is one FIFO of the device. the handshakes are registered
// acknowledgements: in_ready is pulsed for one cycle on the edge that a
// command is accepted and out_valid is pulsed for one cycle on the edge that
// a response is delivered. a response is only delivered on an edge where
// out_ready is high.
type channel struct {
	port  *signals.Port
	depth int
	rnd   *random.Random

	values []uint64

	// a command has been accepted and the response has not yet been
	// delivered. no new command will be accepted while busy
	busy     bool
	respCmd  uint64
	respData uint64

	// cycles remaining before a command is accepted or a response presented
	acceptWait int
	offered    bool
	respWait   int

	stalled bool
}

func (ch *channel) String() string {
	var state string
	switch {
	case ch.stalled:
		state = "stalled"
	case ch.busy:
		state = fmt.Sprintf("busy (response %d in %d)", ch.respCmd, ch.respWait)
	default:
		state = "ready"
	}
	return fmt.Sprintf("%s, %d values", state, len(ch.values))
}

func (ch *channel) reset() {
	ch.values = ch.values[:0]
	ch.busy = false
	ch.offered = false
	ch.acceptWait = 0
	ch.respWait = 0
	ch.port.InReady.Write(0)
	ch.port.OutValid.Write(0)
	ch.port.OutData.Write(0)
	ch.port.OutCmd.Write(0)
}

func (ch *channel) tick(opts Options) {
	// sample inputs before changing anything
	inValid := signals.Hi(ch.port.InValid)
	outReady := signals.Hi(ch.port.OutReady)

	// ready and valid from the device are single cycle pulses
	ch.port.InReady.Write(0)
	ch.port.OutValid.Write(0)

	if ch.stalled {
		return
	}

	if ch.busy {
		if ch.respWait > 0 {
			ch.respWait--
			return
		}
		if outReady {
			ch.port.OutCmd.Write(ch.respCmd)
			ch.port.OutData.Write(ch.respData)
			ch.port.OutValid.Write(1)
			ch.busy = false
		}
		return
	}

	if !inValid {
		ch.offered = false
		return
	}

	cmd := ch.port.InCmd.Read()

	// a full FIFO will not accept a push
	if cmd == signals.CmdPush && ch.depth > 0 && len(ch.values) >= ch.depth {
		return
	}

	// start of a new offer
	if !ch.offered {
		ch.offered = true
		ch.acceptWait = opts.AcceptLatency + ch.rnd.Intn(opts.Jitter+1)
	}

	if ch.acceptWait > 0 {
		ch.acceptWait--
		return
	}

	ch.offered = false
	ch.accept(cmd, ch.port.InData.Read())
	ch.respWait = opts.ResponseLatency + ch.rnd.Intn(opts.Jitter+1)
	ch.busy = true
	ch.port.InReady.Write(1)
}

func (ch *channel) accept(cmd uint64, data uint64) {
	switch cmd {
	case signals.CmdPush:
		ch.values = append(ch.values, data)
		ch.respCmd = RespPushAck
		ch.respData = 0
	case signals.CmdPop:
		if len(ch.values) == 0 {
			ch.respCmd = RespPopEmpty
			ch.respData = 0
			return
		}
		ch.respCmd = signals.RespPop
		ch.respData = ch.values[0]
		ch.values = ch.values[1:]
	default:
		ch.respCmd = RespBadCmd
		ch.respData = cmd
	}
}
