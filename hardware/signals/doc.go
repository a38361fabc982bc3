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

// Package signals defines the view the driver has of a device's signals.
//
// A Port maps the abstract names of one channel's handshake signals to the
// concrete signal handles of the device. The mapping is resolved once, when
// the Port is created, from the name table in this package:
//
//	in_valid, in_ready, in_data, in_cmd, out_valid, out_ready, out_data, out_cmd
//
// with the channel number as a suffix. eg. "out_ready1" is the out_ready
// signal of the second channel.
//
// The Trace type records the recent history of a one bit signal and is
// useful for displaying handshake activity.
package signals
