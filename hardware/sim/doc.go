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

// Package sim is a small cycle based simulator. It holds the named signals
// of a device, ticks the device's clocked logic (a Model) once per cycle and
// calls the per-cycle callbacks registered by a driver.
//
// The order of events for each cycle is:
//
//  1. the model is ticked; it reads its inputs and updates its outputs
//  2. the per-cycle callbacks run; they see the updated outputs and drive
//     the inputs for the next cycle
//  3. observers (waveform and digest recorders) see the final signal values
//
// The Simulator satisfies the driver.Device interface.
package sim
