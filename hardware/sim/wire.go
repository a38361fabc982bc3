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

// wire is the Simulator's implementation of the signals.Signal interface.
type wire struct {
	name  string
	width int
	mask  uint64
	value uint64
}

func (w *wire) Name() string {
	return w.name
}

func (w *wire) Width() int {
	return w.width
}

func (w *wire) Read() uint64 {
	return w.value
}

func (w *wire) Write(v uint64) {
	w.value = v & w.mask
}

func (w *wire) String() string {
	return w.name
}
