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

package driver

import (
	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/prefs"
)

// Default budgets for Dual.Run().
const (
	DefaultMaxCycles    = 100
	DefaultSettleCycles = 10
)

// Preferences for the driver.
type Preferences struct {
	dsk *prefs.Disk

	// cycle budget for the main loop of a run
	MaxCycles prefs.Int

	// cycles advanced after the main loop of a run
	SettleCycles prefs.Int

	// log every channel state transition
	Verbose prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the prefs file at the path.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.MaxCycles.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(NegativeBudget, "cycle", v.(int))
		}
		return nil
	})
	p.SettleCycles.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(NegativeBudget, "settle", v.(int))
		}
		return nil
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	if err := p.dsk.Add("driver.maxcycles", &p.MaxCycles); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("driver.settlecycles", &p.SettleCycles); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("driver.verbose", &p.Verbose); err != nil {
		return nil, err
	}
	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.MaxCycles.Set(DefaultMaxCycles)
	p.SettleCycles.Set(DefaultSettleCycles)
	p.Verbose.Set(false)
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

// AllowLogging implements the logger.Permission interface. Per-cycle logging
// is allowed if the Verbose preference is set.
func (p *Preferences) AllowLogging() bool {
	return p.Verbose.Get().(bool)
}
