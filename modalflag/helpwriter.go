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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// amended with the mode and sub-mode information.
type helpWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	return hw.buffer.Write(p)
}

func (hw *helpWriter) help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	lines := strings.Split(hw.buffer.String(), "\n")

	// the flag package prints only the usage line if there are no flags
	if len(lines) <= 2 && len(subModes) == 0 && additionalHelp == "" {
		if banner == "" {
			io.WriteString(output, "No help available\n")
		} else {
			io.WriteString(output, fmt.Sprintf("No help available for %s\n", banner))
		}
		return
	}

	if banner == "" {
		io.WriteString(output, fmt.Sprintf("%s\n", lines[0]))
	} else {
		io.WriteString(output, fmt.Sprintf("%s for %s mode\n", lines[0], banner))
	}

	flags := strings.Join(lines[1:], "\n")
	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			io.WriteString(output, "\n")
		}
		io.WriteString(output, fmt.Sprintf("  available sub-modes: %s\n", strings.Join(subModes, ", ")))
		io.WriteString(output, fmt.Sprintf("    default: %s\n", subModes[0]))
	}

	if additionalHelp != "" {
		io.WriteString(output, fmt.Sprintf("\n%s\n", additionalHelp))
	}
}
