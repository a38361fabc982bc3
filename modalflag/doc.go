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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows a different
// set of flags for each mode.
//
// Arguments are given to NewArgs() and then parsed with Parse(), which takes
// no arguments. Non-flag arguments are available afterwards through
// RemainingArgs() and GetArg():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "REGRESS", "VERSION")
//	p, err := md.Parse()
//
// A mode is a command line argument that puts the program into a different
// mode of operation, in the manner of the go command (build, test, etc.). The
// first sub-mode added is the default mode. If the first argument after the
// flags is not the name of a sub-mode the default mode is selected and the
// argument remains for the mode to use. Sub-mode comparisons are case
// insensitive.
//
// Each mode calls NewMode() before adding its own flags and parsing again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		maxCycles := md.AddInt("maxcycles", 100, "cycle budget")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseHelp:
//			return nil
//		case modalflag.ParseError:
//			return err
//		}
//		run(md.RemainingArgs(), *maxCycles)
//	}
//
// Modes can be nested as deeply as required. Path() returns the list of
// modes selected so far, separated by a forward slash. For example,
// "REGRESS/RUN".
package modalflag
