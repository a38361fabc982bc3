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

package fifo

import (
	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/prefs"
)

// Preferences for the reference device. The values are used to create the
// Options for a new Device.
type Preferences struct {
	dsk *prefs.Disk

	DataWidth       prefs.Int
	Depth           prefs.Int
	AcceptLatency   prefs.Int
	ResponseLatency prefs.Int
	Jitter          prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the prefs file at the path.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	nonNegative := func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf("fifo: preference must not be negative (%d)", v.(int))
		}
		return nil
	}
	p.Depth.SetHookPre(nonNegative)
	p.AcceptLatency.SetHookPre(nonNegative)
	p.ResponseLatency.SetHookPre(nonNegative)
	p.Jitter.SetHookPre(nonNegative)
	p.DataWidth.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 || v.(int) > 64 {
			return curated.Errorf("fifo: data width must be between 1 and 64 (%d)", v.(int))
		}
		return nil
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	if err := p.dsk.Add("fifo.datawidth", &p.DataWidth); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("fifo.depth", &p.Depth); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("fifo.acceptlatency", &p.AcceptLatency); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("fifo.responselatency", &p.ResponseLatency); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("fifo.jitter", &p.Jitter); err != nil {
		return nil, err
	}
	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	def := DefaultOptions()
	p.DataWidth.Set(def.DataWidth)
	p.Depth.Set(def.Depth)
	p.AcceptLatency.Set(def.AcceptLatency)
	p.ResponseLatency.Set(def.ResponseLatency)
	p.Jitter.Set(def.Jitter)
}

// Load preferences from disk. Values on the command line stack override the
// values on disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Options returns device options for the current preference values.
func (p *Preferences) Options() Options {
	opts := DefaultOptions()
	opts.DataWidth = p.DataWidth.Get().(int)
	opts.Depth = p.Depth.Get().(int)
	opts.AcceptLatency = p.AcceptLatency.Get().(int)
	opts.ResponseLatency = p.ResponseLatency.Get().(int)
	opts.Jitter = p.Jitter.Get().(int)
	return opts
}
