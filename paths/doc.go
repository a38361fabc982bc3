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

// Package paths contains functions to prepare paths to pushpop resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the regression database.
//
//	pth, err := paths.ResourcePath("", "regressionDB")
//
// For development builds the base directory is ".pushpop" in the current
// working directory. For release builds (built with the "release" tag) the
// base directory is "pushpop" in the user's config directory, as reported by
// os.UserConfigDir().
//
// In both cases the directories are created if they do not exist.
package paths
