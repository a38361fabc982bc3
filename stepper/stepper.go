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

package stepper

import (
	"fmt"
	"io"

	"github.com/jetsetilly/pushpop/driver"
	"github.com/jetsetilly/pushpop/hardware/signals"
	"github.com/jetsetilly/pushpop/logger"
	"github.com/jetsetilly/pushpop/scenario"
)

// Keys implementations return a single key press.
type Keys interface {
	ReadKey() (byte, error)
}

// the handshake signals that are traced for each channel
var traced = []signals.Role{signals.InValid, signals.InReady, signals.OutValid, signals.OutReady}

// number of cycles shown by each trace
const traceLength = 32

type trace struct {
	sig signals.Signal
	tr  signals.Trace
}

// Stepper controls the stepping of a scenario.
type Stepper struct {
	keys   Keys
	output io.Writer

	sc  scenario.Scenario
	rig *scenario.Rig

	traces []*trace
}

// NewStepper is the preferred method of initialisation for the Stepper type.
func NewStepper(keys Keys, output io.Writer, sc scenario.Scenario) (*Stepper, error) {
	rig, err := sc.Build()
	if err != nil {
		return nil, err
	}

	stp := &Stepper{
		keys:   keys,
		output: output,
		sc:     sc,
		rig:    rig,
	}

	for _, ch := range []*driver.Channel{rig.Dual.A, rig.Dual.B} {
		for _, r := range traced {
			sig := ch.Port().Signal(r)
			stp.traces = append(stp.traces, &trace{
				sig: sig,
				tr:  signals.NewTrace(fmt.Sprintf("%s %s", ch.Label(), r)),
			})
		}
	}

	return stp, nil
}

func (stp *Stepper) printf(s string, a ...any) {
	io.WriteString(stp.output, fmt.Sprintf(s, a...))
}

func (stp *Stepper) tick() {
	for _, t := range stp.traces {
		t.tr.Tick(signals.Hi(t.sig))
	}
}

func (stp *Stepper) display() {
	d := stp.rig.Dual
	stp.printf("cycle %d\n", d.Cycles())
	stp.printf("  %s\n", d.A)
	stp.printf("  %s\n", d.B)
	for _, t := range stp.traces {
		stp.printf("  %-14s %s\n", t.tr.Label, t.tr.Draw(traceLength))
	}
}

// advance by one cycle. returns true if both channels are idle
func (stp *Stepper) advance() (bool, error) {
	idle, err := stp.rig.Dual.Advance()
	if err != nil {
		return false, err
	}
	stp.tick()
	return idle, nil
}

// Run the scenario. Any key advances the simulation by one cycle. The r key
// runs until the channels are idle or the cycle budget is exhausted. The q
// key ends the run early.
func (stp *Stepper) Run() (driver.Results, error) {
	d := stp.rig.Dual
	d.Start(stp.sc.A, stp.sc.B)

	stp.display()

	idle := d.Idle()
	for !idle {
		stp.printf("[any key] step [r] run [q] quit\n")

		key, err := stp.keys.ReadKey()
		if err != nil {
			return driver.Results{}, err
		}

		switch key {
		case 'q', 'Q':
			logger.Logf(logger.Allow, "stepper", "quit at cycle %d", d.Cycles())
			return d.Finish(0)

		case 'r', 'R':
			for !idle && d.Cycles() < stp.sc.MaxCycles {
				idle, err = stp.advance()
				if err != nil {
					return driver.Results{}, err
				}
			}
			if !idle {
				d.LogExhausted(stp.sc.MaxCycles)
				stp.printf("cycle budget exhausted (%d cycles)\n", stp.sc.MaxCycles)
				stp.display()
				return d.Finish(stp.sc.SettleCycles)
			}

		default:
			idle, err = stp.advance()
			if err != nil {
				return driver.Results{}, err
			}
		}

		stp.display()
	}

	return d.Finish(stp.sc.SettleCycles)
}
