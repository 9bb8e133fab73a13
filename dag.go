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

import "fmt"

// topologicalSort orders a Project's nodes by Kahn's algorithm: seed a
// queue with zero-in-degree nodes, repeatedly emit one and decrement its
// neighbors' in-degree, enqueuing any that reach zero. If fewer nodes are
// emitted than exist, the remainder form at least one cycle.
func topologicalSort(p *Project) ([]string, error) {
	inDegree := make(map[string]int, len(p.Nodes))
	adj := make(map[string][]string, len(p.Nodes))
	for _, n := range p.Nodes {
		inDegree[n.ID] = 0
	}
	for _, l := range p.Links {
		adj[l.From] = append(adj[l.From], l.To)
		inDegree[l.To]++
	}

	var queue []string
	for _, n := range p.Nodes {
		if inDegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}

	order := make([]string, 0, len(p.Nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, next := range adj[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) != len(p.Nodes) {
		return nil, fmt.Errorf("cycle detected among %d node(s)", len(p.Nodes)-len(order))
	}
	return order, nil
}
