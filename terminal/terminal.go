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

package terminal

import (
	"fmt"
	"io"

	"github.com/jetsetilly/pushpop/curated"
	"github.com/pkg/term"
)

// the controlling terminal of the process
const tty = "/dev/tty"

// Terminal reads key presses from the controlling terminal.
type Terminal struct {
	tty    *term.Term
	output io.Writer
}

// Open the controlling terminal in cbreak mode. Output is written to the
// io.Writer and not to the terminal device.
func Open(output io.Writer) (*Terminal, error) {
	t, err := term.Open(tty, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}
	return &Terminal{
		tty:    t,
		output: output,
	}, nil
}

// Close restores the terminal to the mode it was in before Open().
func (pt *Terminal) Close() error {
	if err := pt.tty.Restore(); err != nil {
		pt.tty.Close()
		return curated.Errorf("terminal: %v", err)
	}
	if err := pt.tty.Close(); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

// ReadKey blocks until a key is pressed.
func (pt *Terminal) ReadKey() (byte, error) {
	b := make([]byte, 1)
	if _, err := pt.tty.Read(b); err != nil {
		return 0, curated.Errorf("terminal: %v", err)
	}
	return b[0], nil
}

// Print formatted output.
func (pt *Terminal) Print(s string, a ...any) {
	io.WriteString(pt.output, fmt.Sprintf(s, a...))
}
