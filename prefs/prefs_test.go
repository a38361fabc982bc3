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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/pushpop/prefs"
	"github.com/jetsetilly/pushpop/test"
)

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))
	test.ExpectFailure(t, x.Set(1))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectFailure(t, dsk.Add("number", &w))
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	// loading from a file that doesn't exist is not an error
	test.ExpectSuccess(t, dsk.Load())

	var v prefs.Int
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("name", &s))
	test.ExpectSuccess(t, v.Set(42))
	test.ExpectSuccess(t, s.Set("fifo"))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)
	test.ExpectEquality(t, s.String(), "")

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 42)
	test.ExpectEquality(t, s.String(), "fifo")

	// command line values override the values on disk
	prefs.PushCommandLineStack("number::7")
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 7)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative value")
		}
		return nil
	})

	var post int
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

// write bool and then a string from a different prefs.Disk instance. the
// second write must not clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length will not bring back the cropped string
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}
