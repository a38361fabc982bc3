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

// Package driver is a cycle accurate bus-functional driver for a device with
// two independent push/pop channels. Each channel has a ready/valid handshake
// on its input (command) side and on its output (response) side.
//
// A Channel executes a Queue of commands one at a time. For each command it
// asserts in_valid with the command's opcode and data and waits for the
// device to assert in_ready. It then asserts out_ready and waits for the
// device to assert out_valid. If the response's opcode is signals.RespPop
// the response data is added to the channel's results. At most one command is
// in flight per channel.
//
// The Dual type drives two channels against the same device clock:
//
//	dual, err := driver.NewDual(device)
//	res, err := dual.Run(
//		driver.Queue{driver.Push(5), driver.Pop()},
//		driver.Queue{},
//		driver.DefaultMaxCycles, driver.DefaultSettleCycles,
//	)
//
// Run() returns when both channels are idle or when the cycle budget is
// exhausted. Running out of cycles is not an error: the results are returned
// with the TimedOut flag set and a log entry describes the state of each
// channel. Callers should compare the number of results with the number of
// pop commands they queued.
//
// Nothing in the package is concurrent. Time only moves forward when the
// Dual type steps the device and the channels only react to the device from
// inside the device's per-cycle callback.
package driver
