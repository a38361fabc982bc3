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

package signals

// Opcode values of the in_cmd and out_cmd signals.
const (
	// in_cmd values
	CmdPush uint64 = 0
	CmdPop  uint64 = 1

	// out_cmd value that marks a response carrying popped data. other
	// out_cmd values are device specific and are not reported by the driver
	RespPop uint64 = 3
)
