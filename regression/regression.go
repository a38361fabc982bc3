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

package regression

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/database"
	"github.com/jetsetilly/pushpop/paths"
)

// Sentinal error patterns.
const (
	InvalidKey = "regression: invalid key (%s)"
	NotAdded   = "regression: not added: %s"
)

const regressionPath = "regression"
const regressionDBFile = "db"

// Regressor is the generic entry type in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag is set when the regression is being added to the database. a
	// failed regression returns false and a description of the failure
	regress(newRegression bool) (bool, string, error)
}

func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(scenarioEntryType, deserialiseScenarioEntry)
}

func dbPath() (string, error) {
	pth, err := paths.ResourcePath(regressionPath, regressionDBFile)
	if err != nil {
		return "", curated.Errorf("regression: %v", err)
	}
	return pth, nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	pth, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(pth, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd runs the regression and adds it to the database if it runs
// without failure. Entries that can't be stored in the database, because a
// name or a note contains a separator for example, are not added.
func RegressAdd(output io.Writer, reg Regressor) error {
	// names and notes are checked before the regression is run
	if err := database.CheckEntry(reg); err != nil {
		return curated.Errorf(NotAdded, err)
	}

	pth, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(pth, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	ok, fail, err := reg.regress(true)
	if err != nil {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}
	if !ok {
		db.EndSession(false)
		return curated.Errorf(NotAdded, fail)
	}

	key, err := db.Add(reg)
	if err != nil {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	if err := db.EndSession(true); err != nil {
		return curated.Errorf("regression: %v", err)
	}

	io.WriteString(output, fmt.Sprintf("added: %03d %s\n", key, reg))

	return nil
}

// RegressDelete removes the entry with the key from the database. The user
// is asked for confirmation with the confirmation io.Reader.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(InvalidKey, key)
	}

	pth, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(pth, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	ent, err := db.Get(v)
	if err != nil {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	io.WriteString(output, fmt.Sprintf("%s\ndelete? (y/n): ", ent))

	confirm := make([]byte, 32)
	if _, err := confirmation.Read(confirm); err != nil {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	if confirm[0] != 'y' && confirm[0] != 'Y' {
		return db.EndSession(false)
	}

	if err := db.Delete(v); err != nil {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	if err := db.EndSession(true); err != nil {
		return curated.Errorf("regression: %v", err)
	}

	io.WriteString(output, fmt.Sprintf("deleted test #%03d from regression database\n", v))

	return nil
}

// RegressRun runs all the tests in the regression database, or the tests
// named in the filterKeys list. Returns the number of failed tests.
func RegressRun(output io.Writer, verbose bool, failOnError bool, filterKeys []string) (int, error) {
	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return 0, curated.Errorf(InvalidKey, k)
		}
		keys = append(keys, v)
	}

	pth, err := dbPath()
	if err != nil {
		return 0, err
	}

	db, err := database.StartSession(pth, database.ActivityReading, initDBSession)
	if err != nil {
		return 0, curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	numSucceed := 0
	numFail := 0
	numError := 0

	onSelect := func(key int, ent database.Entry) (bool, error) {
		reg, ok := ent.(Regressor)
		if !ok {
			return false, curated.Errorf("regression: database entry does not satisfy Regressor interface")
		}

		ok, fail, err := reg.regress(false)

		switch {
		case err != nil:
			numError++
			io.WriteString(output, fmt.Sprintf("  ERROR: %03d %s\n", key, reg))
			if verbose {
				io.WriteString(output, fmt.Sprintf("  %v\n", err))
			}
			if failOnError {
				return false, nil
			}
		case !ok:
			numFail++
			io.WriteString(output, fmt.Sprintf("failure: %03d %s\n", key, reg))
			if verbose {
				io.WriteString(output, fmt.Sprintf("  %s\n", fail))
			}
		default:
			numSucceed++
			io.WriteString(output, fmt.Sprintf("succeed: %03d %s\n", key, reg))
		}

		return true, nil
	}

	if db.NumEntries() > 0 {
		if _, err := db.SelectKeys(onSelect, keys...); err != nil {
			return numFail + numError, curated.Errorf("regression: %v", err)
		}
	}

	s := fmt.Sprintf("regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		s = fmt.Sprintf("%s [with %d errors]", s, numError)
	}
	io.WriteString(output, fmt.Sprintf("%s\n", s))

	return numFail + numError, nil
}
