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
	"io"

	"github.com/bradleyjkemp/memviz"
)

// Dump writes a graphviz (dot) description of the two channels to the
// io.Writer, including the remaining queues, any staged command, the results
// so far and the signals of each channel. Useful for examining a run that has
// exhausted its cycle budget.
func (d *Dual) Dump(w io.Writer) {
	memviz.Map(w, d.A, d.B)
}
