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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/pushpop/hardware/signals"
)

// Source is the simulator (or any other source of signals) that is being
// fingerprinted.
type Source interface {
	Signals() []signals.Signal
}

// Signals is a digest of the values of every signal at the end of every
// cycle. It implements the sim.Observer interface.
type Signals struct {
	src    Source
	digest [sha1.Size]byte

	// the first sha1.Size bytes are reserved for the previous digest
	buffer []byte

	cycles int
}

// NewSignals is the preferred method of initialisation for the Signals
// type. The list of signals is fixed when the digest is created.
func NewSignals(src Source) *Signals {
	dig := &Signals{src: src}
	dig.buffer = make([]byte, len(dig.digest)+len(src.Signals())*8)
	return dig
}

func (dig *Signals) String() string {
	return fmt.Sprintf("%s (%d cycles)", dig.Hash(), dig.cycles)
}

// Hash implements the Digest interface.
func (dig *Signals) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Signals) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.cycles = 0
}

// ObserveCycle implements the sim.Observer interface.
func (dig *Signals) ObserveCycle(_ int) {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the buffer
	copy(dig.buffer, dig.digest[:])

	i := len(dig.digest)
	for _, s := range dig.src.Signals() {
		if i+8 > len(dig.buffer) {
			break
		}
		binary.LittleEndian.PutUint64(dig.buffer[i:], s.Read())
		i += 8
	}

	dig.digest = sha1.Sum(dig.buffer)
	dig.cycles++
}
