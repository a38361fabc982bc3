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

// Package logger is the central log for the application. Entries are tagged
// with the name of the component making the entry and a detail string.
//
// Log entries are kept in memory and written on request. The log is bounded
// and the oldest entries are forgotten when the limit is reached. Repeated
// entries are collapsed into a single entry with a repeat count.
//
// Every log request requires a Permission. Components that log on every
// cycle should take a Permission from their caller so that the caller can
// decide whether the log will be useful. Allow is a good default otherwise.
package logger
