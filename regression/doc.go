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

// Package regression facilitates the regression testing of the driver and
// the reference device. By adding scenarios to a database, the scenarios can
// be rerun automatically and checked for consistency.
//
// When a scenario is added to the database it is run once and the results of
// both channels are recorded, along with the digest of every signal on every
// cycle. When the regression is run again the results and the digest must
// match. A change in the digest without a change in the results means that
// the timing of the handshake has changed.
//
// Jitter is always run with a zero seed so that the digest is reproducible.
package regression
