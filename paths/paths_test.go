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

//go:build !release

package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/pushpop/paths"
	"github.com/jetsetilly/pushpop/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".pushpop/foo/bar/baz")

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".pushpop/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".pushpop/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".pushpop")

	_, err = os.Stat(".pushpop/foo/bar")
	test.ExpectSuccess(t, err)
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("waveform", "fifo")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "waveform_fifo_"))

	fn = paths.UniqueFilename("scenario", "  ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "scenario_2"))
}
