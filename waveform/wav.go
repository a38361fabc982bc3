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

package waveform

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/hardware/signals"
)

// DefaultSampleRate is the sample rate of the WAV file. One sample is
// written per cycle so the sample rate only affects the apparent duration of
// the recording.
const DefaultSampleRate = 8000

const (
	wavBitDepth = 16
	wavFormat   = 1 // PCM

	// the level of a signal that is high
	wavHi = 0x7fff

	// number of frames buffered before writing to the encoder
	wavChunk = 1024
)

// WAV writes the value of each signal as a channel of a WAV file. WAV files
// can be imported by logic analyser software (sigrok for example) as analogue
// channels.
//
// One bit signals are written as either zero or the maximum level. Wider
// signals are written with their lowest fifteen bits.
type WAV struct {
	enc  *wav.Encoder
	sigs []signals.Signal
	buf  *audio.IntBuffer
	err  error
}

// NewWAV creates a WAV recording for the list of signals. The file is not
// complete until Close() is called.
func NewWAV(output io.WriteSeeker, sigs []signals.Signal, sampleRate int) (*WAV, error) {
	if len(sigs) == 0 {
		return nil, curated.Errorf("wav: no signals")
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	return &WAV{
		enc:  wav.NewEncoder(output, sampleRate, wavBitDepth, len(sigs), wavFormat),
		sigs: sigs,
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: len(sigs),
				SampleRate:  sampleRate,
			},
			Data:           make([]int, 0, wavChunk*len(sigs)),
			SourceBitDepth: wavBitDepth,
		},
	}, nil
}

func (w *WAV) flush() {
	if w.err != nil || len(w.buf.Data) == 0 {
		return
	}
	w.err = w.enc.Write(w.buf)
	w.buf.Data = w.buf.Data[:0]
}

// ObserveCycle implements the sim.Observer interface.
func (w *WAV) ObserveCycle(_ int) {
	for _, s := range w.sigs {
		v := s.Read()
		if s.Width() == 1 {
			if v != 0 {
				v = wavHi
			}
		} else {
			v &= wavHi
		}
		w.buf.Data = append(w.buf.Data, int(v))
	}

	if len(w.buf.Data) >= wavChunk*len(w.sigs) {
		w.flush()
	}
}

// Close writes any buffered samples and completes the WAV file. It does not
// close the underlying io.WriteSeeker.
func (w *WAV) Close() error {
	w.flush()
	if w.err == nil {
		w.err = w.enc.Close()
	}
	if w.err != nil {
		return curated.Errorf("wav: %v", w.err)
	}
	return nil
}
