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

// Package random should be used in preference to the math/rand package when
// a random number is required inside the simulation.
//
// Numbers are derived from the current simulation cycle and a salt value.
// The same cycle and salt will always produce the same number for the
// lifetime of the program, which means that a simulation can be repeated
// exactly. Different salts allow independent components (eg. the two
// channels of a device) to receive different numbers on the same cycle.
//
// If the same random numbers are required every single time the program is
// run then set ZeroSeed to true. This is useful for testing and for
// regression scenarios.
package random
