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

package signals

import "strings"

// Trace records the recent history of a one bit signal, whether it is high or
// low, and whether the immediately previous state was high or low.
//
// Moving from one state to the next is done with Tick(). Deriving conditions
// from two traces is convenient. For example, a completed handshake on the
// input side of a channel:
//
//	if valid.Hi() && ready.Rising() {
//		...
//	}
type Trace struct {
	Label string

	// new values are added to the end of the array
	Activity []bool

	from bool
	to   bool
}

const activityLength = 64

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace(label string) Trace {
	return Trace{
		Label:    label,
		Activity: make([]bool, activityLength),
	}
}

func (tr *Trace) Changed() bool {
	return tr.from != tr.to
}

func (tr *Trace) Falling() bool {
	return tr.from && !tr.to
}

func (tr *Trace) Rising() bool {
	return !tr.from && tr.to
}

func (tr *Trace) Hi() bool {
	return tr.to
}

func (tr *Trace) Lo() bool {
	return !tr.to
}

// Tick records the next state of the signal.
func (tr *Trace) Tick(v bool) {
	tr.from = tr.to
	tr.to = v
	tr.Activity = append(tr.Activity[1:], v)
}

// Draw returns the most recent n entries of the activity as a line of
// characters suitable for a terminal.
func (tr *Trace) Draw(n int) string {
	if n > len(tr.Activity) {
		n = len(tr.Activity)
	}
	s := strings.Builder{}
	for _, v := range tr.Activity[len(tr.Activity)-n:] {
		if v {
			s.WriteRune('‾')
		} else {
			s.WriteRune('_')
		}
	}
	return s.String()
}
