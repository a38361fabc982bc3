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

package sim

import (
	"fmt"
	"sort"

	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/hardware/signals"
	"github.com/jetsetilly/pushpop/logger"
)

// Sentinal error patterns.
const (
	UnknownSignal   = "sim: unknown signal (%s)"
	DuplicateSignal = "sim: signal already declared (%s)"
	IllegalWidth    = "sim: illegal width for signal %s (%d)"
)

// Model implementations are the clocked logic of a simulated device. Tick()
// is called once for every clock edge and should read the current value of
// its input signals and write the new value of its output signals.
type Model interface {
	Tick()
}

// Observer implementations are notified after every cycle, once the
// per-cycle callbacks have run. They see the final state of every signal for
// that cycle.
type Observer interface {
	ObserveCycle(cycle int)
}

// Simulator is a minimal cycle based simulation of a clocked device. Signals
// are declared with a name and a width and are then available through the
// Signal() function.
//
// A cycle is advanced with Step(). On every cycle the model is ticked, the
// per-cycle callbacks are run and then the observers are notified.
type Simulator struct {
	model Model

	wires map[string]*wire
	order []*wire

	callbacks []func()
	observers []Observer

	cycle int
}

// NewSimulator is the preferred method of initialisation for the Simulator
// type.
func NewSimulator() *Simulator {
	return &Simulator{
		wires: make(map[string]*wire),
	}
}

func (s *Simulator) String() string {
	return fmt.Sprintf("cycle %d, %d signals", s.cycle, len(s.order))
}

// Declare a new signal. Width must be between 1 and 64 bits.
func (s *Simulator) Declare(name string, width int) (signals.Signal, error) {
	if _, ok := s.wires[name]; ok {
		return nil, curated.Errorf(DuplicateSignal, name)
	}
	if width < 1 || width > 64 {
		return nil, curated.Errorf(IllegalWidth, name, width)
	}

	w := &wire{name: name, width: width}
	if width < 64 {
		w.mask = (uint64(1) << width) - 1
	} else {
		w.mask = ^uint64(0)
	}

	s.wires[name] = w
	s.order = append(s.order, w)

	return w, nil
}

// Attach the model that will be ticked on every cycle. Replaces any
// previously attached model.
func (s *Simulator) Attach(m Model) {
	s.model = m
}

// Signal implements the signals.Lookup interface.
func (s *Simulator) Signal(name string) (signals.Signal, error) {
	w, ok := s.wires[name]
	if !ok {
		return nil, curated.Errorf(UnknownSignal, name)
	}
	return w, nil
}

// Signals returns every declared signal in declaration order.
func (s *Simulator) Signals() []signals.Signal {
	l := make([]signals.Signal, len(s.order))
	for i := range s.order {
		l[i] = s.order[i]
	}
	return l
}

// SignalNames returns the names of every declared signal in sorted order.
func (s *Simulator) SignalNames() []string {
	n := make([]string, 0, len(s.order))
	for _, w := range s.order {
		n = append(n, w.name)
	}
	sort.Strings(n)
	return n
}

// Cycle returns the number of cycles advanced since the simulator was
// created.
func (s *Simulator) Cycle() int {
	return s.cycle
}

// AddCycleCallback adds a function to be called on every cycle, after the
// model has been ticked.
func (s *Simulator) AddCycleCallback(f func()) {
	s.callbacks = append(s.callbacks, f)
}

// ClearCycleCallbacks forgets all per-cycle callbacks.
func (s *Simulator) ClearCycleCallbacks() {
	s.callbacks = s.callbacks[:0]
}

// AddObserver adds an observer to be notified at the end of every cycle.
func (s *Simulator) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// RemoveObserver forgets the observer.
func (s *Simulator) RemoveObserver(o Observer) {
	for i := range s.observers {
		if s.observers[i] == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Step advances the simulation by n cycles.
func (s *Simulator) Step(n int) {
	for range n {
		s.cycle++

		if s.model != nil {
			s.model.Tick()
		}

		for _, f := range s.callbacks {
			f()
		}

		for _, o := range s.observers {
			o.ObserveCycle(s.cycle)
		}
	}
}

// LogState writes the value of every signal to the central logger.
func (s *Simulator) LogState(perm logger.Permission) {
	for _, w := range s.order {
		logger.Logf(perm, "sim", "cycle %d: %s = %#x", s.cycle, w.name, w.value)
	}
}
