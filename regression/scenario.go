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
	"slices"
	"strconv"

	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/database"
	"github.com/jetsetilly/pushpop/scenario"
)

const scenarioEntryType = "scenario"

const (
	scenarioFieldName int = iota
	scenarioFieldA
	scenarioFieldB
	scenarioFieldMaxCycles
	scenarioFieldSettleCycles
	scenarioFieldDataWidth
	scenarioFieldDepth
	scenarioFieldAcceptLatency
	scenarioFieldResponseLatency
	scenarioFieldJitter
	scenarioFieldResultsA
	scenarioFieldResultsB
	scenarioFieldDigest
	scenarioFieldNotes
	numScenarioFields
)

// ScenarioRegression is the regression entry type for a driver scenario.
type ScenarioRegression struct {
	Scenario scenario.Scenario
	Notes    string

	digest string
}

// NewScenarioRegression is the preferred method of initialisation for the
// ScenarioRegression type.
func NewScenarioRegression(sc scenario.Scenario) *ScenarioRegression {
	sc.Device.ZeroSeed = true
	return &ScenarioRegression{Scenario: sc}
}

func deserialiseScenarioEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numScenarioFields {
		return nil, curated.Errorf("scenario entry: wrong number of fields (%d)", len(fields))
	}

	reg := &ScenarioRegression{
		Notes:  fields[scenarioFieldNotes],
		digest: fields[scenarioFieldDigest],
	}

	sc := scenario.NewScenario(fields[scenarioFieldName], nil, nil)
	sc.Device.ZeroSeed = true

	ints := []struct {
		field int
		v     *int
	}{
		{scenarioFieldMaxCycles, &sc.MaxCycles},
		{scenarioFieldSettleCycles, &sc.SettleCycles},
		{scenarioFieldDataWidth, &sc.Device.DataWidth},
		{scenarioFieldDepth, &sc.Device.Depth},
		{scenarioFieldAcceptLatency, &sc.Device.AcceptLatency},
		{scenarioFieldResponseLatency, &sc.Device.ResponseLatency},
		{scenarioFieldJitter, &sc.Device.Jitter},
	}

	var err error

	for _, i := range ints {
		*i.v, err = strconv.Atoi(fields[i.field])
		if err != nil {
			return nil, curated.Errorf("scenario entry: invalid field (%s)", fields[i.field])
		}
	}

	sc.A, err = scenario.ParseQueue(fields[scenarioFieldA], sc.Device.DataWidth)
	if err != nil {
		return nil, curated.Errorf("scenario entry: %v", err)
	}
	sc.B, err = scenario.ParseQueue(fields[scenarioFieldB], sc.Device.DataWidth)
	if err != nil {
		return nil, curated.Errorf("scenario entry: %v", err)
	}

	sc.ExpectA, err = scenario.ParseResults(fields[scenarioFieldResultsA])
	if err != nil {
		return nil, curated.Errorf("scenario entry: %v", err)
	}
	sc.ExpectB, err = scenario.ParseResults(fields[scenarioFieldResultsB])
	if err != nil {
		return nil, curated.Errorf("scenario entry: %v", err)
	}

	reg.Scenario = sc

	return reg, nil
}

// EntryType implements the database.Entry interface.
func (reg ScenarioRegression) EntryType() string {
	return scenarioEntryType
}

// Serialise implements the database.Entry interface.
func (reg *ScenarioRegression) Serialise() (database.SerialisedEntry, error) {
	sc := reg.Scenario
	return database.SerialisedEntry{
		sc.Name,
		scenario.FormatQueue(sc.A),
		scenario.FormatQueue(sc.B),
		strconv.Itoa(sc.MaxCycles),
		strconv.Itoa(sc.SettleCycles),
		strconv.Itoa(sc.Device.DataWidth),
		strconv.Itoa(sc.Device.Depth),
		strconv.Itoa(sc.Device.AcceptLatency),
		strconv.Itoa(sc.Device.ResponseLatency),
		strconv.Itoa(sc.Device.Jitter),
		scenario.FormatResults(sc.ExpectA),
		scenario.FormatResults(sc.ExpectB),
		reg.digest,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg ScenarioRegression) CleanUp() error {
	return nil
}

func (reg ScenarioRegression) String() string {
	sc := reg.Scenario
	s := fmt.Sprintf("[%s] %s: A %s B %s (latency %d/%d, jitter %d)",
		scenarioEntryType, sc.Name, sc.A, sc.B,
		sc.Device.AcceptLatency, sc.Device.ResponseLatency, sc.Device.Jitter)
	if reg.Notes != "" {
		s = fmt.Sprintf("%s [%s]", s, reg.Notes)
	}
	return s
}

// Digest returns the digest recorded when the regression was added.
func (reg ScenarioRegression) Digest() string {
	return reg.digest
}

// regress implements the Regressor interface.
func (reg *ScenarioRegression) regress(newRegression bool) (bool, string, error) {
	sc := reg.Scenario

	out, err := sc.Run()
	if err != nil {
		return false, "", err
	}

	if newRegression {
		if out.TimedOut {
			return false, fmt.Sprintf("timed out after %d cycles", out.Cycles), nil
		}
		reg.Scenario.ExpectA = slices.Clone(out.A)
		reg.Scenario.ExpectB = slices.Clone(out.B)
		reg.digest = out.Digest
		return true, "", nil
	}

	if err := sc.Check(out); err != nil {
		return false, err.Error(), nil
	}

	if out.Digest != reg.digest {
		return false, fmt.Sprintf("digest mismatch: %s expected %s", out.Digest, reg.digest), nil
	}

	return true, "", nil
}
