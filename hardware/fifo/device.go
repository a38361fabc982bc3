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

package fifo

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/pushpop/curated"
	"github.com/jetsetilly/pushpop/hardware/signals"
	"github.com/jetsetilly/pushpop/hardware/sim"
	"github.com/jetsetilly/pushpop/logger"
	"github.com/jetsetilly/pushpop/random"
)

// out_cmd values produced by the device in addition to signals.RespPop.
const (
	RespPushAck  uint64 = 2
	RespPopEmpty uint64 = 4
	RespBadCmd   uint64 = 5
)

// width of the in_cmd and out_cmd signals
const cmdWidth = 3

// Sentinal error patterns.
const (
	BadOptions = "fifo: bad options: %s"
	NoChannel  = "fifo: no such channel (%d)"
)

// Options for the creation of a new Device.
type Options struct {
	// number of independent channels
	Channels int

	// width of the in_data and out_data signals
	DataWidth int

	// maximum number of values held by each channel. a value of zero means
	// that the FIFO is unbounded. a full FIFO will not accept push commands
	Depth int

	// number of cycles a command must be offered before it is accepted
	AcceptLatency int

	// number of cycles after a command has been accepted before the response
	// can be presented
	ResponseLatency int

	// a random number of cycles, up to and including Jitter, is added to
	// both latencies
	Jitter int

	// ZeroSeed makes the jitter the same on every run of the program
	ZeroSeed bool
}

// DefaultOptions returns the options of a two channel device with no
// latency.
func DefaultOptions() Options {
	return Options{
		Channels:  2,
		DataWidth: 32,
	}
}

func (opts Options) validate() error {
	switch {
	case opts.Channels < 1:
		return curated.Errorf(BadOptions, fmt.Sprintf("channels (%d)", opts.Channels))
	case opts.DataWidth < 1 || opts.DataWidth > 64:
		return curated.Errorf(BadOptions, fmt.Sprintf("data width (%d)", opts.DataWidth))
	case opts.Depth < 0:
		return curated.Errorf(BadOptions, fmt.Sprintf("depth (%d)", opts.Depth))
	case opts.AcceptLatency < 0:
		return curated.Errorf(BadOptions, fmt.Sprintf("accept latency (%d)", opts.AcceptLatency))
	case opts.ResponseLatency < 0:
		return curated.Errorf(BadOptions, fmt.Sprintf("response latency (%d)", opts.ResponseLatency))
	case opts.Jitter < 0:
		return curated.Errorf(BadOptions, fmt.Sprintf("jitter (%d)", opts.Jitter))
	}
	return nil
}

// Device is a simulated device with independent push/pop FIFO channels. It
// implements the sim.Model interface.
type Device struct {
	opts     Options
	rst      signals.Signal
	channels []*channel
}

// NewDevice declares the device's signals on the simulator and attaches the
// device as the simulator's model.
func NewDevice(s *sim.Simulator, opts Options) (*Device, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	dev := &Device{opts: opts}

	var err error
	dev.rst, err = s.Declare(signals.Reset, 1)
	if err != nil {
		return nil, curated.Errorf("fifo: %v", err)
	}

	for i := range opts.Channels {
		for r := signals.Role(0); r < signals.NumRoles; r++ {
			var width int
			switch r {
			case signals.InData, signals.OutData:
				width = opts.DataWidth
			case signals.InCmd, signals.OutCmd:
				width = cmdWidth
			default:
				width = 1
			}
			if _, err := s.Declare(signals.Name(r, i), width); err != nil {
				return nil, curated.Errorf("fifo: %v", err)
			}
		}

		port, err := signals.NewPort(s, i)
		if err != nil {
			return nil, curated.Errorf("fifo: %v", err)
		}

		rnd := random.NewRandom(s, i)
		rnd.ZeroSeed = opts.ZeroSeed

		dev.channels = append(dev.channels, &channel{
			port:  port,
			depth: opts.Depth,
			rnd:   rnd,
		})
	}

	s.Attach(dev)
	logger.Logf(logger.Allow, "fifo", "attached %d channel device (depth %d, latency %d/%d, jitter %d)",
		opts.Channels, opts.Depth, opts.AcceptLatency, opts.ResponseLatency, opts.Jitter)

	return dev, nil
}

func (dev *Device) String() string {
	s := strings.Builder{}
	for i, ch := range dev.channels {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("fifo %d: %s", i, ch))
	}
	return s.String()
}

// Tick implements the sim.Model interface.
func (dev *Device) Tick() {
	if signals.Hi(dev.rst) {
		for _, ch := range dev.channels {
			ch.reset()
		}
		return
	}

	for _, ch := range dev.channels {
		ch.tick(dev.opts)
	}
}

// Stall prevents the channel from accepting commands or presenting
// responses. Used to simulate a device that has stopped responding.
func (dev *Device) Stall(channel int, stall bool) error {
	if channel < 0 || channel >= len(dev.channels) {
		return curated.Errorf(NoChannel, channel)
	}
	dev.channels[channel].stalled = stall
	return nil
}

// Contents returns a copy of the values currently held by the channel.
func (dev *Device) Contents(channel int) ([]uint64, error) {
	if channel < 0 || channel >= len(dev.channels) {
		return nil, curated.Errorf(NoChannel, channel)
	}
	c := make([]uint64, len(dev.channels[channel].values))
	copy(c, dev.channels[channel].values)
	return c, nil
}
