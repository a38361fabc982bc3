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

// Package fifo is a reference device for the push/pop driver. Each channel
// of the device is an independent FIFO: a push command stores a value and a
// pop command returns the oldest stored value.
//
// The device responds to every command. Responses are identified by the
// out_cmd signal:
//
//	RespPushAck     push accepted
//	signals.RespPop pop accepted, out_data is the popped value
//	RespPopEmpty    pop accepted but the FIFO was empty
//	RespBadCmd      in_cmd was not recognised, out_data is the bad in_cmd
//
// Handshakes are registered. The device pulses in_ready for one cycle on the
// clock edge that it accepts a command and pulses out_valid for one cycle on
// the clock edge that it delivers a response. A response is only delivered on
// an edge where out_ready is high. No new command is accepted until the
// previous response has been delivered.
//
// Latencies and random jitter can be configured to exercise a driver's
// handling of slow devices. Stall() simulates a device that has stopped
// responding altogether.
package fifo
