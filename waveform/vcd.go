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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/hardware/signals"
)

// range of printable characters used for VCD identifiers
const (
	idFirst = '!'
	idLast  = '~'
)

// identifier returns the short VCD identifier code for the nth variable.
func identifier(n int) string {
	const base = idLast - idFirst + 1
	s := strings.Builder{}
	for {
		s.WriteByte(byte(idFirst + n%base))
		n /= base
		if n == 0 {
			break
		}
		n--
	}
	return s.String()
}

type variable struct {
	sig  signals.Signal
	id   string
	last uint64
}

// VCD writes the value of each signal every cycle. Changes are buffered and
// will not appear in the output until Close() is called.
type VCD struct {
	w    *bufio.Writer
	vars []variable

	// the first error encountered while writing. once an error has occurred
	// no more output is written
	err error

	started bool
}

// NewVCD writes the VCD header for the list of signals. The scope is the
// name of the module that will appear in the waveform viewer.
func NewVCD(output io.Writer, sigs []signals.Signal, scope string) (*VCD, error) {
	vcd := &VCD{
		w: bufio.NewWriter(output),
	}

	for i, s := range sigs {
		vcd.vars = append(vcd.vars, variable{sig: s, id: identifier(i)})
	}

	vcd.printf("$version pushpop $end\n")
	vcd.printf("$timescale 1ns $end\n")
	vcd.printf("$scope module %s $end\n", scope)
	for _, v := range vcd.vars {
		vcd.printf("$var wire %d %s %s $end\n", v.sig.Width(), v.id, v.sig.Name())
	}
	vcd.printf("$upscope $end\n")
	vcd.printf("$enddefinitions $end\n")

	if vcd.err != nil {
		return nil, curated.Errorf("vcd: %v", vcd.err)
	}

	return vcd, nil
}

func (vcd *VCD) printf(format string, args ...any) {
	if vcd.err != nil {
		return
	}
	_, vcd.err = fmt.Fprintf(vcd.w, format, args...)
}

func (vcd *VCD) value(v variable, value uint64) {
	if v.sig.Width() == 1 {
		vcd.printf("%d%s\n", value&1, v.id)
		return
	}
	vcd.printf("b%s %s\n", strconv.FormatUint(value, 2), v.id)
}

// ObserveCycle implements the sim.Observer interface.
func (vcd *VCD) ObserveCycle(cycle int) {
	if !vcd.started {
		vcd.started = true
		vcd.printf("#%d\n$dumpvars\n", cycle)
		for i := range vcd.vars {
			v := &vcd.vars[i]
			v.last = v.sig.Read()
			vcd.value(*v, v.last)
		}
		vcd.printf("$end\n")
		return
	}

	stamped := false
	for i := range vcd.vars {
		v := &vcd.vars[i]
		value := v.sig.Read()
		if value == v.last {
			continue
		}
		if !stamped {
			vcd.printf("#%d\n", cycle)
			stamped = true
		}
		v.last = value
		vcd.value(*v, value)
	}
}

// Close flushes any buffered output. It does not close the underlying
// io.Writer. Returns the first error encountered during writing.
func (vcd *VCD) Close() error {
	if vcd.err == nil {
		vcd.err = vcd.w.Flush()
	}
	if vcd.err != nil {
		return curated.Errorf("vcd: %v", vcd.err)
	}
	return nil
}
