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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
// The pattern doubles as the identity of the error so that callers can test
// for specific errors without needing sentinel values:
//
//	const NegativeBudget = "driver: negative budget (%d)"
//
//	err := curated.Errorf(NegativeBudget, -1)
//	if curated.Is(err, NegativeBudget) {
//		...
//	}
//
// The Has() function is similar but also looks at any curated error used as
// a placeholder value. In other words, it searches the error chain:
//
//	f := curated.Errorf("scenario: %v", err)
//	curated.Has(f, NegativeBudget) // true
//	curated.Is(f, NegativeBudget)  // false
//
// The Error() function normalises the message by removing adjacent duplicate
// parts, where parts are separated by ": ". This means that a function can
// prefix errors with its package name without worrying about whether the
// error it received already has that prefix:
//
//	curated.Errorf("driver: %v", curated.Errorf("driver: channel stalled"))
//
// prints as "driver: channel stalled".
package curated
