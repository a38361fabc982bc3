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
)

// Command is a single push or pop operation for a channel. Commands are
// immutable once created.
type Command struct {
	pop  bool
	data uint64
}

// Push returns a command that will push the value to the device.
func Push(v uint64) Command {
	return Command{data: v}
}

// Pop returns a command that will pop a value from the device.
func Pop() Command {
	return Command{pop: true}
}

// IsPop returns true if the command is a pop command.
func (c Command) IsPop() bool {
	return c.pop
}

// Data returns the value of a push command. Always zero for a pop command.
func (c Command) Data() uint64 {
	return c.data
}

func (c Command) String() string {
	if c.pop {
		return "pop"
	}
	return fmt.Sprintf("push(%d)", c.data)
}

// Queue is an ordered sequence of commands for one channel. Commands are
// consumed from the front.
type Queue []Command

// Pops returns the number of pop commands in the queue.
func (q Queue) Pops() int {
	n := 0
	for _, c := range q {
		if c.pop {
			n++
		}
	}
	return n
}

func (q Queue) String() string {
	s := make([]string, len(q))
	for i, c := range q {
		s[i] = c.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(s, " "))
}
