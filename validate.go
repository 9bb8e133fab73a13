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

// ValidateProject reports every problem it can find in p as a
// human-readable string. It is advisory: callers may still attempt a
// partial simulation, and ValidateProject itself never fails — only
// RunSimulation treats a cycle or unknown event as fatal.
func ValidateProject(p *Project) []string {
	var problems []string

	seen := make(map[string]bool, len(p.Nodes))
	for _, n := range p.Nodes {
		if seen[n.ID] {
			problems = append(problems, fmt.Sprintf("duplicate node id %q", n.ID))
		}
		seen[n.ID] = true
	}

	for _, l := range p.Links {
		if !seen[l.From] {
			problems = append(problems, fmt.Sprintf("link %q: unresolved endpoint %q", l.ID, l.From))
		}
		if !seen[l.To] {
			problems = append(problems, fmt.Sprintf("link %q: unresolved endpoint %q", l.ID, l.To))
		}
	}

	if _, err := topologicalSort(p); err != nil {
		problems = append(problems, fmt.Sprintf("cycle detected: %v", err))
	}

	for _, n := range p.Nodes {
		sc, ok := n.Data.(SubcatchmentData)
		if !ok {
			continue
		}
		hasArea := false
		for _, a := range sc.SubAreas {
			if a.AreaAcres > 0 {
				hasArea = true
				break
			}
		}
		if !hasArea {
			problems = append(problems, fmt.Sprintf("subcatchment %q: missing sub-areas with positive area", n.ID))
		}
		if len(sc.FlowSegments) == 0 && sc.TcOverrideHours <= 0 {
			problems = append(problems, fmt.Sprintf("subcatchment %q: missing both flow segments and a Tc override", n.ID))
		}
	}

	if len(p.Events) == 0 {
		problems = append(problems, "project has no rainfall events")
	}

	return problems
}
