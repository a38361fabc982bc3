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

	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/hardware/signals"
	"github.com/jetsetilly/pushpop/logger"
)

// Sentinal error patterns.
const (
	NegativeBudget = "driver: negative %s budget (%d)"
	NotStarted     = "driver: run has not been started"
)

// Device is the simulated device under test, as seen by the driver.
type Device interface {
	signals.Lookup

	// Step advances the device by n cycles. Every cycle ends with a call to
	// each of the registered per-cycle callbacks.
	Step(n int)

	AddCycleCallback(f func())
	ClearCycleCallbacks()
}

// Results of a Dual.Run(). The logs contain the values returned by the pop
// commands of each channel, in the order the pop commands were queued.
//
// If TimedOut is true then the cycle budget was exhausted before both
// channels were idle and the logs may be incomplete.
type Results struct {
	A []uint64
	B []uint64

	// number of cycles advanced by the main loop, not including the reset
	// sequence or the settle cycles
	Cycles int

	TimedOut bool
}

func (r Results) String() string {
	s := fmt.Sprintf("A: %v, B: %v (%d cycles)", r.A, r.B, r.Cycles)
	if r.TimedOut {
		s = fmt.Sprintf("%s [timed out]", s)
	}
	return s
}

// Dual runs two independent channels of a device against the device's clock.
// The two channels share nothing but the clock and the reset signal.
type Dual struct {
	dev Device
	rst signals.Signal

	A *Channel
	B *Channel

	started bool
	cycles  int
}

// NewDual is the preferred method of initialisation for the Dual type. The
// device must have a reset signal and channels numbered 0 and 1.
func NewDual(dev Device) (*Dual, error) {
	rst, err := dev.Signal(signals.Reset)
	if err != nil {
		return nil, curated.Errorf("driver: %v", err)
	}

	portA, err := signals.NewPort(dev, 0)
	if err != nil {
		return nil, curated.Errorf("driver: %v", err)
	}

	portB, err := signals.NewPort(dev, 1)
	if err != nil {
		return nil, curated.Errorf("driver: %v", err)
	}

	return &Dual{
		dev: dev,
		rst: rst,
		A:   NewChannel("A", portA),
		B:   NewChannel("B", portB),
	}, nil
}

// SetLogging sets the permission for per-cycle logging in both channels.
func (d *Dual) SetLogging(perm logger.Permission) {
	d.A.SetLogging(perm)
	d.B.SetLogging(perm)
}

// Reset runs the reset sequence: the driver side signals of both channels are
// released, the reset signal is asserted for one cycle and then deasserted
// for one cycle. Both channels are returned to the idle state with empty
// queues and no results.
func (d *Dual) Reset() {
	d.dev.ClearCycleCallbacks()

	d.A.Port().Release()
	d.B.Port().Release()

	d.rst.Write(1)
	d.dev.Step(1)
	d.rst.Write(0)
	d.dev.Step(1)

	d.A.Reset()
	d.B.Reset()

	d.started = false
	d.cycles = 0
}

// Start a new run. The device is reset and the queues are loaded into the two
// channels. The caller's queues are not changed.
//
// Most callers should use Run(). Start(), Advance() and Finish() are for
// callers that need to see the run progress one cycle at a time.
func (d *Dual) Start(queueA Queue, queueB Queue) {
	d.Reset()

	d.A.Load(queueA)
	d.B.Load(queueB)

	d.dev.ClearCycleCallbacks()
	d.dev.AddCycleCallback(d.A.Step)
	d.dev.AddCycleCallback(d.B.Step)

	d.started = true
	logger.Logf(logger.Allow, "driver", "started: A %d commands, B %d commands", len(queueA), len(queueB))
}

// Idle returns true if both channels are idle.
func (d *Dual) Idle() bool {
	return d.A.IsIdle() && d.B.IsIdle()
}

// Cycles returns the number of cycles advanced since Start().
func (d *Dual) Cycles() int {
	return d.cycles
}

// Advance the device by one cycle, unless both channels are already idle.
// Returns true if both channels are idle after the cycle.
func (d *Dual) Advance() (bool, error) {
	if !d.started {
		return false, curated.Errorf(NotStarted)
	}
	if !d.Idle() {
		d.dev.Step(1)
		d.cycles++
	}
	return d.Idle(), nil
}

// Finish the run. The device is advanced by settleCycles cycles regardless of
// the state of the channels, the per-cycle callbacks are removed and the
// results are returned.
func (d *Dual) Finish(settleCycles int) (Results, error) {
	if !d.started {
		return Results{}, curated.Errorf(NotStarted)
	}
	if settleCycles < 0 {
		return Results{}, curated.Errorf(NegativeBudget, "settle", settleCycles)
	}

	// channels that have not yet finished will still react during the
	// settle cycles
	timedOut := !d.Idle()

	d.dev.Step(settleCycles)
	d.dev.ClearCycleCallbacks()
	d.started = false

	return Results{
		A:        d.A.Results(),
		B:        d.B.Results(),
		Cycles:   d.cycles,
		TimedOut: timedOut,
	}, nil
}

// Run both queues to completion or until maxCycles cycles have been
// advanced, whichever comes first. The device is then advanced by a further
// settleCycles cycles.
//
// Exhausting the cycle budget is not an error. A log entry describing the
// state of each channel is made and the results so far are returned, with the
// TimedOut field set. The device is left mid-transaction.
func (d *Dual) Run(queueA Queue, queueB Queue, maxCycles int, settleCycles int) (Results, error) {
	if maxCycles < 0 {
		return Results{}, curated.Errorf(NegativeBudget, "cycle", maxCycles)
	}
	if settleCycles < 0 {
		return Results{}, curated.Errorf(NegativeBudget, "settle", settleCycles)
	}

	d.Start(queueA, queueB)

	for !d.Idle() && d.cycles < maxCycles {
		if _, err := d.Advance(); err != nil {
			return Results{}, err
		}
	}

	if !d.Idle() {
		d.LogExhausted(maxCycles)
	}

	return d.Finish(settleCycles)
}

// LogExhausted makes the log entries for a run that has used all of its cycle
// budget: the size of the budget and the state of each channel.
func (d *Dual) LogExhausted(maxCycles int) {
	logger.Logf(logger.Allow, "driver", "cycle budget exhausted (%d cycles)", maxCycles)
	logger.Log(logger.Allow, "driver", d.A)
	logger.Log(logger.Allow, "driver", d.B)
}

// RunWithPreferences is the same as Run() but with the budgets taken from the
// preferences. Per-cycle logging is also set according to the preferences.
func (d *Dual) RunWithPreferences(queueA Queue, queueB Queue, p *Preferences) (Results, error) {
	d.SetLogging(p)
	return d.Run(queueA, queueB, p.MaxCycles.Get().(int), p.SettleCycles.Get().(int))
}
