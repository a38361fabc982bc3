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

// Package waveform writes the signals of a simulation to a value change dump
// (VCD) file. VCD files can be opened by most waveform viewers (GTKWave for
// example).
//
// The VCD type implements the sim.Observer interface. One timestamp is
// written for every cycle of the simulation and only signals that have
// changed since the previous cycle are written.
//
//	vcd, _ := waveform.NewVCD(f, s.Signals(), "pushpop")
//	s.AddObserver(vcd)
//	...
//	s.RemoveObserver(vcd)
//	vcd.Close()
//
// The WAV type is also an observer. It writes one sample per cycle for every
// signal, with each signal on its own channel.
package waveform
