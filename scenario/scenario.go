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

package scenario

import (
	"fmt"
	"slices"

	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/digest"
	"github.com/jetsetilly/pushpop/driver"
	"github.com/jetsetilly/pushpop/hardware/fifo"
	"github.com/jetsetilly/pushpop/hardware/sim"
)

// Sentinal error patterns.
const (
	Mismatch = "scenario: %s: channel %s produced %v, expected %v"
	TimedOut = "scenario: %s: timed out after %d cycles"
)

// Scenario is a complete description of a single run.
type Scenario struct {
	Name string

	A driver.Queue
	B driver.Queue

	MaxCycles    int
	SettleCycles int

	Device fifo.Options

	// the expected results for each channel. a nil value means that the
	// results of the channel are not checked
	ExpectA []uint64
	ExpectB []uint64
}

// NewScenario returns a scenario with the default budgets and device options.
func NewScenario(name string, a driver.Queue, b driver.Queue) Scenario {
	return Scenario{
		Name:         name,
		A:            a,
		B:            b,
		MaxCycles:    driver.DefaultMaxCycles,
		SettleCycles: driver.DefaultSettleCycles,
		Device:       fifo.DefaultOptions(),
	}
}

func (sc Scenario) String() string {
	return fmt.Sprintf("%s: A %s, B %s", sc.Name, sc.A, sc.B)
}

// Rig is a simulation built for a scenario.
type Rig struct {
	Sim    *sim.Simulator
	Device *fifo.Device
	Dual   *driver.Dual
	Digest *digest.Signals
}

// Build a new simulation for the scenario. The digest is attached as the
// first observer of the simulation.
func (sc Scenario) Build() (*Rig, error) {
	rig := &Rig{
		Sim: sim.NewSimulator(),
	}

	var err error

	rig.Device, err = fifo.NewDevice(rig.Sim, sc.Device)
	if err != nil {
		return nil, curated.Errorf("scenario: %v", err)
	}

	rig.Dual, err = driver.NewDual(rig.Sim)
	if err != nil {
		return nil, curated.Errorf("scenario: %v", err)
	}

	rig.Digest = digest.NewSignals(rig.Sim)
	rig.Sim.AddObserver(rig.Digest)

	return rig, nil
}

// Outcome of a scenario run.
type Outcome struct {
	driver.Results
	Digest string
}

func (out Outcome) String() string {
	return fmt.Sprintf("%s [%s]", out.Results, out.Digest)
}

// Run the scenario in a newly built simulation. Additional observers are
// attached for the duration of the run.
func (sc Scenario) Run(observers ...sim.Observer) (Outcome, error) {
	rig, err := sc.Build()
	if err != nil {
		return Outcome{}, err
	}
	return rig.Run(sc, observers...)
}

// Run the scenario in an existing Rig.
func (rig *Rig) Run(sc Scenario, observers ...sim.Observer) (Outcome, error) {
	for _, o := range observers {
		rig.Sim.AddObserver(o)
	}
	defer func() {
		for _, o := range observers {
			rig.Sim.RemoveObserver(o)
		}
	}()

	rig.Digest.ResetDigest()

	res, err := rig.Dual.Run(sc.A, sc.B, sc.MaxCycles, sc.SettleCycles)
	if err != nil {
		return Outcome{}, curated.Errorf("scenario: %v", err)
	}

	return Outcome{
		Results: res,
		Digest:  rig.Digest.Hash(),
	}, nil
}

// Check the outcome against the expected results.
func (sc Scenario) Check(out Outcome) error {
	if out.TimedOut {
		return curated.Errorf(TimedOut, sc.Name, out.Cycles)
	}
	if sc.ExpectA != nil && !slices.Equal(sc.ExpectA, out.A) {
		return curated.Errorf(Mismatch, sc.Name, "A", out.A, sc.ExpectA)
	}
	if sc.ExpectB != nil && !slices.Equal(sc.ExpectB, out.B) {
		return curated.Errorf(Mismatch, sc.Name, "B", out.B, sc.ExpectB)
	}
	return nil
}
