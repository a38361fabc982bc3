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

//go:build !statsview

package statsview

import "io"

// Address of the statsview server. Empty because the server is not
// available in this build.
const Address = ""

// Launch does nothing except print a message explaining that the statsview
// server is not available.
func Launch(output io.Writer) {
	io.WriteString(output, "stats server not available (build with the statsview tag)\n")
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
