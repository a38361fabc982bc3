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

package regression_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/database"
	"github.com/jetsetilly/pushpop/driver"
	"github.com/jetsetilly/pushpop/regression"
	"github.com/jetsetilly/pushpop/scenario"
	"github.com/jetsetilly/pushpop/test"
)

// the regression database is stored in the resource directory, which is
// relative to the working directory
func chdir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		os.Chdir(wd)
	})
}

func TestRegression(t *testing.T) {
	chdir(t)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, regression.RegressList(w))
	test.ExpectEquality(t, w.String(), "database is empty\n")

	sc := scenario.NewScenario("example", driver.Queue{driver.Push(5), driver.Pop()}, nil)
	reg := regression.NewScenarioRegression(sc)
	reg.Notes = "push then pop"

	w.Clear()
	test.DemandSuccess(t, regression.RegressAdd(w, reg))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "added: 000 [scenario] example"), w.String())
	test.ExpectEquality(t, len(reg.Digest()), 40)

	sc = scenario.NewScenario("jitter", driver.Queue{driver.Push(1), driver.Push(2), driver.Pop()},
		driver.Queue{driver.Push(3), driver.Pop(), driver.Pop()})
	sc.Device.Jitter = 4
	sc.Device.ResponseLatency = 1
	test.DemandSuccess(t, regression.RegressAdd(w, regression.NewScenarioRegression(sc)))

	w.Clear()
	failed, err := regression.RegressRun(w, true, false, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, failed, 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "succeed: 000"), w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "succeed: 001"), w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "regression tests: 2 succeed, 0 fail\n"), w.String())

	w.Clear()
	failed, err = regression.RegressRun(w, false, false, []string{"1"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, failed, 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "regression tests: 1 succeed, 0 fail\n"), w.String())

	_, err = regression.RegressRun(w, false, false, []string{"x"})
	test.ExpectSuccess(t, curated.Is(err, regression.InvalidKey))

	w.Clear()
	test.ExpectSuccess(t, regression.RegressList(w))
	test.ExpectSuccess(t, strings.Contains(w.String(), "[push then pop]"), w.String())
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "Total: 2\n"), w.String())

	// declined deletion
	w.Clear()
	test.ExpectSuccess(t, regression.RegressDelete(w, strings.NewReader("n\n"), "0"))
	w.Clear()
	test.ExpectSuccess(t, regression.RegressList(w))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "Total: 2\n"), w.String())

	w.Clear()
	test.ExpectSuccess(t, regression.RegressDelete(w, strings.NewReader("y\n"), "0"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "deleted test #000"), w.String())

	w.Clear()
	test.ExpectSuccess(t, regression.RegressList(w))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "001 [scenario] jitter"), w.String())
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "Total: 1\n"), w.String())

	test.ExpectFailure(t, regression.RegressDelete(w, strings.NewReader("y\n"), "0"))
	test.ExpectSuccess(t, curated.Is(regression.RegressDelete(w, strings.NewReader("y\n"), "zero"), regression.InvalidKey))
}

func TestRegressionFailure(t *testing.T) {
	chdir(t)

	w := &test.CompareWriter{}
	sc := scenario.NewScenario("example", driver.Queue{driver.Push(5), driver.Pop()}, nil)
	test.DemandSuccess(t, regression.RegressAdd(w, regression.NewScenarioRegression(sc)))

	// alter the recorded result of channel A
	fn := filepath.Join(".pushpop", "regression", "db")
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, strings.Contains(string(data), ",5,,"))
	data = []byte(strings.Replace(string(data), ",5,,", ",6,,", 1))
	test.DemandSuccess(t, os.WriteFile(fn, data, 0600))

	w.Clear()
	failed, err := regression.RegressRun(w, true, false, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, failed, 1)
	test.ExpectSuccess(t, strings.Contains(w.String(), "failure: 000"), w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "expected [6]"), w.String())
}

func TestTimedOutNotAdded(t *testing.T) {
	chdir(t)

	sc := scenario.NewScenario("slow", driver.Queue{driver.Push(5), driver.Pop()}, nil)
	sc.MaxCycles = 1

	w := &test.CompareWriter{}
	err := regression.RegressAdd(w, regression.NewScenarioRegression(sc))
	test.ExpectSuccess(t, curated.Is(err, regression.NotAdded))

	w.Clear()
	test.ExpectSuccess(t, regression.RegressList(w))
	test.ExpectEquality(t, w.String(), "database is empty\n")
}

func TestSeparatorNotAdded(t *testing.T) {
	chdir(t)

	w := &test.CompareWriter{}
	sc := scenario.NewScenario("keep", driver.Queue{driver.Push(5), driver.Pop()}, nil)
	test.DemandSuccess(t, regression.RegressAdd(w, regression.NewScenarioRegression(sc)))

	reg := regression.NewScenarioRegression(scenario.NewScenario("commas", driver.Queue{driver.Pop()}, nil))
	reg.Notes = "a, b"
	err := regression.RegressAdd(w, reg)
	test.ExpectSuccess(t, curated.Is(err, regression.NotAdded))
	test.ExpectSuccess(t, curated.Has(err, database.Separator))

	reg = regression.NewScenarioRegression(scenario.NewScenario("a,b", driver.Queue{driver.Pop()}, nil))
	test.ExpectSuccess(t, curated.Is(regression.RegressAdd(w, reg), regression.NotAdded))

	// the existing entry is untouched
	w.Clear()
	test.ExpectSuccess(t, regression.RegressList(w))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "000 [scenario] keep"), w.String())
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "Total: 1\n"), w.String())
}
