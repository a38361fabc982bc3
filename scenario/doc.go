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

// Package scenario describes a complete run of the driver against the
// reference FIFO device: the two command queues, the cycle budgets, the
// device options and, optionally, the expected results.
//
// Queues are written as a list of tokens separated by spaces or commas.
// Integers are push commands and the word "pop" is a pop command. Integers
// can be written in decimal, hexadecimal (0x prefix) or binary (0b prefix):
//
//	q, err := scenario.ParseQueue("5, 0x10 pop pop", 32)
//
// A Scenario is run with Run(), which builds a new simulation each time it
// is called. The Rig type is available for callers that need to control the
// simulation directly.
package scenario
