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
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetsetilly/pushpop/curated"
)

// Activity is used to specify the type of activity that will be performed
// on the database during the session.
type Activity int

// List of valid Activity values. The ActivityCreating value implies
// ActivityModifying if the database already exists.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session keeps track of a database session.
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession starts/initialises a new database session. The init function
// should be used to register the entry types that are expected in the
// database.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, curated.Errorf("database: %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) || activity != ActivityCreating {
			return nil, curated.Errorf("database: %v", err)
		}
		return db, nil
	}
	defer f.Close()

	if err := db.read(f); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Session) read(f *os.File) error {
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: malformed entry at line %d", lineNum)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: invalid key (%s) at line %d", fields[leaderFieldKey], lineNum)
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key (%d) at line %d", key, lineNum)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type (%s) at line %d", fields[leaderFieldID], lineNum)
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		db.entries[key] = ent
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

// EndSession closes the database. If commit is true and the session was
// not started with ActivityReading then the entries are written to disk.
//
// Every entry is serialised before the file is touched. The new file is
// written alongside the old one and renamed over it, so an error leaves the
// database on disk as it was.
func (db *Session) EndSession(commit bool) error {
	if !commit || db.activity == ActivityReading {
		return nil
	}

	var b bytes.Buffer

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		ser, err := serialise(ent)
		if err != nil {
			return err
		}

		b.WriteString(recordHeader(key, ent.EntryType()))
		for _, s := range ser {
			b.WriteString(fieldSep)
			b.WriteString(s)
		}
		b.WriteString(entrySep)
	}

	f, err := os.CreateTemp(filepath.Dir(db.path), filepath.Base(db.path)+"_*")
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	if _, err := f.Write(b.Bytes()); err != nil {
		f.Close()
		os.Remove(f.Name())
		return curated.Errorf("database: %v", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return curated.Errorf("database: %v", err)
	}

	if err := os.Rename(f.Name(), db.path); err != nil {
		os.Remove(f.Name())
		return curated.Errorf("database: %v", err)
	}

	return nil
}
