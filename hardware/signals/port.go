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

package signals

import (
	"fmt"

	"github.com/jetsetilly/pushpop/curated"
)

// Signal is a handle to a named signal in the device under test. Values
// written to a signal are masked to the signal's width.
type Signal interface {
	Name() string
	Width() int
	Read() uint64
	Write(v uint64)
}

// Hi returns true if the signal is non-zero. Used for the one bit handshake
// signals.
func Hi(s Signal) bool {
	return s.Read() != 0
}

// Lookup implementations resolve a signal name to a Signal handle.
type Lookup interface {
	Signal(name string) (Signal, error)
}

// Reset is the name of the synchronous, active-high reset signal shared by
// all channels.
const Reset = "rst"

// Role is the part a signal plays in a channel's handshake.
type Role int

// List of valid Role values. The order is the order of the fields in the
// Port type.
const (
	InValid Role = iota
	InReady
	InData
	InCmd
	OutValid
	OutReady
	OutData
	OutCmd
	NumRoles
)

var roleNames = [NumRoles]string{
	"in_valid",
	"in_ready",
	"in_data",
	"in_cmd",
	"out_valid",
	"out_ready",
	"out_data",
	"out_cmd",
}

func (r Role) String() string {
	if r < 0 || r >= NumRoles {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// DriverSide returns true if the signal is driven by the driver rather than
// by the device.
func (r Role) DriverSide() bool {
	switch r {
	case InValid, InData, InCmd, OutReady:
		return true
	}
	return false
}

// Name returns the device signal name for the role on the numbered channel.
// The channel number is a suffix of the abstract name. eg. "in_valid0".
func Name(r Role, channel int) string {
	return fmt.Sprintf("%s%d", r, channel)
}

// Port is a fixed view of one channel's signals. All handles are resolved
// when the Port is created and the Port is never changed afterwards; only the
// values of the signals it points to change.
type Port struct {
	Channel int

	InValid  Signal
	InReady  Signal
	InData   Signal
	InCmd    Signal
	OutValid Signal
	OutReady Signal
	OutData  Signal
	OutCmd   Signal
}

// NewPort resolves the signals for the numbered channel.
func NewPort(lookup Lookup, channel int) (*Port, error) {
	p := &Port{Channel: channel}

	fields := p.fields()
	for r := Role(0); r < NumRoles; r++ {
		s, err := lookup.Signal(Name(r, channel))
		if err != nil {
			return nil, curated.Errorf("port: %v", err)
		}
		*fields[r] = s
	}

	return p, nil
}

func (p *Port) fields() [NumRoles]*Signal {
	return [NumRoles]*Signal{
		&p.InValid,
		&p.InReady,
		&p.InData,
		&p.InCmd,
		&p.OutValid,
		&p.OutReady,
		&p.OutData,
		&p.OutCmd,
	}
}

// Signal returns the signal for the role.
func (p *Port) Signal(r Role) Signal {
	return *p.fields()[r]
}

// Signals returns all signals in the port in Role order.
func (p *Port) Signals() []Signal {
	s := make([]Signal, 0, NumRoles)
	for _, f := range p.fields() {
		s = append(s, *f)
	}
	return s
}

// Release drives every driver-side signal low.
func (p *Port) Release() {
	for r := Role(0); r < NumRoles; r++ {
		if r.DriverSide() {
			p.Signal(r).Write(0)
		}
	}
}

func (p *Port) String() string {
	return fmt.Sprintf("channel %d: in v%d r%d cmd=%d data=%#x; out v%d r%d cmd=%d data=%#x",
		p.Channel,
		p.InValid.Read(), p.InReady.Read(), p.InCmd.Read(), p.InData.Read(),
		p.OutValid.Read(), p.OutReady.Read(), p.OutCmd.Read(), p.OutData.Read())
}
