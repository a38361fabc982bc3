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

package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/driver"
)

// Sentinal error patterns.
const (
	BadToken     = "scenario: bad token (%s)"
	ValueTooWide = "scenario: value %s does not fit in %d bits"
	InvalidWidth = "scenario: invalid data width (%d)"
)

// the keyword for a pop command
const popToken = "pop"

func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// ParseQueue converts the string into a driver.Queue. Push values must fit
// in the number of bits given by width, which must be between 1 and 64.
func ParseQueue(s string, width int) (driver.Queue, error) {
	if width < 1 || width > 64 {
		return nil, curated.Errorf(InvalidWidth, width)
	}

	var q driver.Queue

	for _, tok := range splitTokens(s) {
		if strings.EqualFold(tok, popToken) {
			q = append(q, driver.Pop())
			continue
		}

		v, err := strconv.ParseUint(tok, 0, 64)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				return nil, curated.Errorf(ValueTooWide, tok, width)
			}
			return nil, curated.Errorf(BadToken, tok)
		}

		if width < 64 && v>>width != 0 {
			return nil, curated.Errorf(ValueTooWide, tok, width)
		}

		q = append(q, driver.Push(v))
	}

	return q, nil
}

// FormatQueue is the inverse of ParseQueue. The returned string contains no
// commas.
func FormatQueue(q driver.Queue) string {
	s := make([]string, len(q))
	for i, c := range q {
		if c.IsPop() {
			s[i] = popToken
		} else {
			s[i] = fmt.Sprintf("%d", c.Data())
		}
	}
	return strings.Join(s, " ")
}

// ParseResults converts a list of integers, as written by FormatResults(),
// into a slice of uint64.
func ParseResults(s string) ([]uint64, error) {
	r := []uint64{}
	for _, tok := range splitTokens(s) {
		v, err := strconv.ParseUint(tok, 0, 64)
		if err != nil {
			return nil, curated.Errorf(BadToken, tok)
		}
		r = append(r, v)
	}
	return r, nil
}

// FormatResults returns the list of results as a space separated string.
func FormatResults(r []uint64) string {
	s := make([]string, len(r))
	for i, v := range r {
		s[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(s, " ")
}
