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

package waveform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/pushpop/hardware/sim"
	"github.com/jetsetilly/pushpop/test"
	"github.com/jetsetilly/pushpop/waveform"
)

func TestWAV(t *testing.T) {
	s := sim.NewSimulator()
	valid, err := s.Declare("valid", 1)
	test.DemandSuccess(t, err)
	data, err := s.Declare("data", 32)
	test.DemandSuccess(t, err)

	fn := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	w, err := waveform.NewWAV(f, s.Signals(), 0)
	test.DemandSuccess(t, err)
	s.AddObserver(w)

	// more cycles than fit in one chunk
	for i := range 2000 {
		valid.Write(uint64(i & 1))
		data.Write(uint64(i))
		s.Step(1)
	}

	test.ExpectSuccess(t, w.Close())
	test.ExpectSuccess(t, f.Close())

	f, err = os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, int(dec.NumChans), 2)
	test.ExpectEquality(t, int(dec.SampleRate), waveform.DefaultSampleRate)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), 4000)

	test.ExpectEquality(t, buf.Data[0], 0)
	test.ExpectEquality(t, buf.Data[1], 0)
	test.ExpectEquality(t, buf.Data[2], 0x7fff)
	test.ExpectEquality(t, buf.Data[3], 1)
	test.ExpectEquality(t, buf.Data[3998], 0x7fff)
	test.ExpectEquality(t, buf.Data[3999], 1999)
}

func TestWAVNoSignals(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	test.DemandSuccess(t, err)
	defer f.Close()

	_, err = waveform.NewWAV(f, nil, 0)
	test.ExpectFailure(t, err)
}
