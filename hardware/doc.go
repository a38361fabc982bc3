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

// Package hardware is the base package for the clocked side of the bus. Its
// sub-packages contain everything required for a headless simulation.
//
// The sim package is the root of the simulation. It owns the signals and the
// clock and from there the simulation is stepped cycle by cycle. The signals
// package describes the ready/valid port of a single channel and the fifo
// package is the device model that answers on the other side of the ports.
package hardware
