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

// Package prefs handles the preference values for the application. Values
// are of a fixed type (Bool, Int or String) and are registered with a Disk
// instance under a key. The Disk instance loads and saves all of its values
// together.
//
// The file on disk is a plain text file of "key :: value" lines sorted by
// key, preceded by the WarningBoilerPlate line.
//
// Values can be overridden for a single invocation of the program through
// the command line stack. See PushCommandLineStack().
//
// The pre and post hooks of each type allow a package to validate or react
// to a new value. For example, the driver package uses a pre hook to refuse
// negative cycle budgets.
package prefs
