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

package driver

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/pushpop/hardware/signals"
	"github.com/jetsetilly/pushpop/logger"
)

// State of a channel's handshake.
type State int

// List of valid State values.
const (
	// no command in flight. the next command can be taken from the queue
	Idle State = iota

	// in_valid has been asserted with the command and the channel is waiting
	// for the device to assert in_ready
	CommandSent

	// out_ready has been asserted and the channel is waiting for the device
	// to assert out_valid
	AwaitingResponse
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case CommandSent:
		return "command sent"
	case AwaitingResponse:
		return "awaiting response"
	}
	return "unknown state"
}

// Channel drives one channel of the device through a queue of commands, one
// command at a time. Step() should be called once per cycle, after the device
// has updated its outputs for that cycle.
type Channel struct {
	label string
	port  *signals.Port

	// permission for the per-cycle transition log entries
	perm logger.Permission

	queue   Queue
	staged  *Command
	state   State
	results []uint64

	// the command currently in flight. for diagnostics only
	current Command

	// number of cycles spent in the current state
	waiting int
}

// NewChannel is the preferred method of initialisation for the Channel type.
func NewChannel(label string, port *signals.Port) *Channel {
	return &Channel{
		label: label,
		port:  port,
		perm:  logger.Deny,
	}
}

// SetLogging sets the permission for the log entries made on every state
// transition. Logging is denied by default.
func (ch *Channel) SetLogging(perm logger.Permission) {
	ch.perm = perm
}

// Label returns the name of the channel.
func (ch *Channel) Label() string {
	return ch.label
}

// Port returns the signals used by the channel.
func (ch *Channel) Port() *signals.Port {
	return ch.port
}

func (ch *Channel) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("channel %s: %s", ch.label, ch.state))
	if ch.state != Idle {
		s.WriteString(fmt.Sprintf(" %s for %d cycles", ch.current, ch.waiting))
	}
	s.WriteString(fmt.Sprintf(", %d queued", ch.Pending()))
	if len(ch.queue) > 0 {
		s.WriteString(fmt.Sprintf(" %s", ch.queue))
	}
	s.WriteString(fmt.Sprintf(", %d results", len(ch.results)))
	return s.String()
}

// Reset clears the queue and the results and returns the channel to the Idle
// state. The device's signals are not changed.
func (ch *Channel) Reset() {
	ch.queue = nil
	ch.staged = nil
	ch.state = Idle
	ch.results = nil
	ch.current = Command{}
	ch.waiting = 0
}

// Load a queue of commands. The queue is copied so the caller's slice is never
// changed. Commands should only be loaded before a run has started.
func (ch *Channel) Load(q Queue) {
	ch.queue = append(ch.queue, q...)
}

// State returns the current handshake state.
func (ch *Channel) State() State {
	return ch.state
}

// Pending returns the number of commands that have not yet been started.
func (ch *Channel) Pending() int {
	n := len(ch.queue)
	if ch.staged != nil {
		n++
	}
	return n
}

// IsBusy returns true if a command is in flight.
func (ch *Channel) IsBusy() bool {
	return ch.state != Idle
}

// IsIdle returns true if there is no command in flight and no command waiting
// to start.
func (ch *Channel) IsIdle() bool {
	return ch.state == Idle && len(ch.queue) == 0 && ch.staged == nil
}

// Results returns a copy of the values returned by completed pop commands,
// in the order that the pop commands were queued.
func (ch *Channel) Results() []uint64 {
	r := make([]uint64, len(ch.results))
	copy(r, ch.results)
	return r
}

// Step advances the channel's state machine. The handshake signals are
// sampled as they were left by the most recent device cycle.
func (ch *Channel) Step() {
	ch.waiting++

	switch ch.state {
	case CommandSent:
		if signals.Hi(ch.port.InReady) {
			ch.port.InValid.Write(0)
			ch.port.OutReady.Write(1)
			ch.transition(AwaitingResponse)
		}

	case AwaitingResponse:
		if signals.Hi(ch.port.OutValid) {
			ch.port.OutReady.Write(0)
			ch.transition(Idle)

			if ch.port.OutCmd.Read() == signals.RespPop {
				v := ch.port.OutData.Read()
				ch.results = append(ch.results, v)
				logger.Logf(ch.perm, "driver", "channel %s: popped %d", ch.label, v)
			}
		}
	}

	if ch.state != Idle {
		return
	}

	if ch.staged == nil && len(ch.queue) > 0 {
		c := ch.queue[0]
		ch.staged = &c
		ch.queue = ch.queue[1:]
	}

	if ch.staged != nil {
		ch.port.InValid.Write(1)
		if ch.staged.pop {
			ch.port.InCmd.Write(signals.CmdPop)
			ch.port.InData.Write(0)
		} else {
			ch.port.InCmd.Write(signals.CmdPush)
			ch.port.InData.Write(ch.staged.data)
		}
		ch.current = *ch.staged
		ch.staged = nil
		ch.transition(CommandSent)
	}
}

func (ch *Channel) transition(s State) {
	logger.Logf(ch.perm, "driver", "channel %s: %s -> %s after %d cycles (%s)", ch.label, ch.state, s, ch.waiting, ch.current)
	ch.state = s
	ch.waiting = 0
}
