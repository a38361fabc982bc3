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

// Package digest is used to create mathematical hashes of the simulated
// signals. The hash of every cycle is chained with the hash of the previous
// cycle so the final value is a fingerprint of the entire run.
//
// Digest values are used by the regression package to detect changes in
// the timing of a scenario.
package digest

// Digest implementations compute a fingerprint of the simulation.
type Digest interface {
	Hash() string
	ResetDigest()
}
