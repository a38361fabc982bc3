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

package database

import "github.com/jetsetilly/pushpop/curated"

// SelectAll entries in the database. onSelect can be nil.
//
// onSelect() is called with the key and the entry. Returning false from
// onSelect() stops the iteration without error. An error returned by
// onSelect() stops the iteration and is returned by SelectAll().
//
// Returns the last entry selected.
func (db Session) SelectAll(onSelect func(int, Entry) (bool, error)) (Entry, error) {
	return db.SelectKeys(onSelect)
}

// SelectKeys matches entries with the specified key(s). If no keys are
// specified then all entries are selected. onSelect can be nil.
//
// Returns the last entry selected or an error if no entry was selected.
func (db Session) SelectKeys(onSelect func(int, Entry) (bool, error), keys ...int) (Entry, error) {
	var entry Entry

	if onSelect == nil {
		onSelect = func(_ int, _ Entry) (bool, error) { return true, nil }
	}

	keyList := keys
	if len(keys) == 0 {
		keyList = db.SortedKeyList()
	}

	for _, key := range keyList {
		ent, ok := db.entries[key]
		if !ok {
			return entry, curated.Errorf(KeyNotAvailable, key)
		}

		entry = ent

		cont, err := onSelect(key, ent)
		if err != nil {
			return entry, err
		}
		if !cont {
			break
		}
	}

	if entry == nil {
		return nil, curated.Errorf("database: select empty")
	}

	return entry, nil
}
