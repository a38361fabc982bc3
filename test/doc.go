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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a failure with t.Errorf() and allow the
// test to continue. The Demand*() functions are the same except that they
// stop the test with t.Fatalf(). Demand*() should be used when subsequent
// tests depend on the value being correct, for example, when checking the
// length of two slices before iterating over them in unison.
//
// Success and failure values are interpreted according to type:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// The optional tags arguments are prepended to failure messages. They are
// useful to identify which iteration of a loop has failed.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The Compare() function can then be used to test
// for equality.
package test
