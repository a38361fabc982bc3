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

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jetsetilly/pushpop/curated"
)

// Sentinal error patterns.
const (
	KeyNotAvailable = "database: key not available (%d)"
	ReadOnly        = "database: session is read only"
	Separator       = "database: field contains a separator (%q)"
)

const maxEntries = 1000

const fieldSep = ","
const entrySep = "\n"

const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

func recordHeader(key int, id string) string {
	return fmt.Sprintf("%03d%s%s", key, fieldSep, id)
}

// CheckEntry serialises the entry and returns an error if any field cannot
// be stored in the database.
func CheckEntry(ent Entry) error {
	_, err := serialise(ent)
	return err
}

func serialise(ent Entry) (SerialisedEntry, error) {
	ser, err := ent.Serialise()
	if err != nil {
		return nil, curated.Errorf("database: %v", err)
	}
	for _, s := range ser {
		if strings.Contains(s, fieldSep) || strings.Contains(s, entrySep) {
			return nil, curated.Errorf(Separator, s)
		}
	}
	return ser, nil
}

// NumEntries returns the number of entries in the database.
func (db Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db Session) SortedKeyList() []int {
	keyList := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keyList = append(keyList, k)
	}
	sort.Ints(keyList)
	return keyList
}

// List the entries in key order.
func (db Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		if _, err := io.WriteString(output, "database is empty\n"); err != nil {
			return err
		}
		return nil
	}

	for _, key := range db.SortedKeyList() {
		if _, err := io.WriteString(output, fmt.Sprintf("%03d %s\n", key, db.entries[key])); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(output, fmt.Sprintf("Total: %d\n", db.NumEntries())); err != nil {
		return err
	}

	return nil
}

// Get returns the entry with the specified key.
func (db Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf(KeyNotAvailable, key)
	}
	return ent, nil
}

// Add an entry to the database. The entry is given the lowest available key,
// which is returned. Entries that cannot be serialised are rejected.
func (db *Session) Add(ent Entry) (int, error) {
	if db.activity == ActivityReading {
		return -1, curated.Errorf(ReadOnly)
	}

	if err := CheckEntry(ent); err != nil {
		return -1, err
	}

	var key int

	// find spare key
	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}

	if key == maxEntries {
		return -1, curated.Errorf("database: maximum entries exceeded (max %d)", maxEntries)
	}

	db.entries[key] = ent

	return key, nil
}

// Delete the entry with the specified key. The entry's CleanUp() function is
// called before it is removed.
func (db *Session) Delete(key int) error {
	if db.activity == ActivityReading {
		return curated.Errorf(ReadOnly)
	}

	ent, ok := db.entries[key]
	if !ok {
		return curated.Errorf(KeyNotAvailable, key)
	}

	if err := ent.CleanUp(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	delete(db.entries, key)

	return nil
}
