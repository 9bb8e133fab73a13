/*
Copyright © 2026 the stormlab authors.
This file is part of stormlab.

stormlab is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

stormlab is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with stormlab.  If not, see <http://www.gnu.org/licenses/>.
*/

package stormlab

// Link is a directed edge of the drainage network, from one node's
// outflow into another node's inflow. The core only ever reads the
// incoming relation (all Links with To == nodeID); the "first link
// defines the downstream" policy mentioned in the data model is a
// parser-side convenience and has no bearing here.
type Link struct {
	ID   string
	From string
	To   string
}
