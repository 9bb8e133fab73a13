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

// Package cli is the headless runner's cobra command tree: a single root
// command over stormlab-cli <project.json>, following the same
// cobra/pflag binding the teacher's inmaputil CLI layer uses.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alejandroechev/stormlab"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	eventFlag    string
	jsonFlag     bool
	validateFlag bool
)

// Root is the stormlab-cli root command.
var Root = &cobra.Command{
	Use:   "stormlab-cli <project.json>",
	Short: "Run a stormwater drainage network simulation from a project file",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	Root.Flags().StringVar(&eventFlag, "event", "", "id of the rainfall event to simulate (default: the project's first event)")
	Root.Flags().BoolVar(&jsonFlag, "json", false, "emit results as JSON instead of a summary table (omits full hydrograph arrays)")
	Root.Flags().BoolVar(&validateFlag, "validate", false, "validate the project only; exit 0 if clean, 1 otherwise")

	logrus.SetOutput(os.Stderr)
}

func run(cmd *cobra.Command, args []string) error {
	path := args[0]
	project, err := stormlab.LoadFile(path)
	if err != nil {
		return err
	}

	if validateFlag {
		problems := stormlab.ValidateProject(project)
		for _, p := range problems {
			fmt.Fprintln(os.Stderr, p)
		}
		if len(problems) > 0 {
			os.Exit(1)
		}
		return nil
	}

	eventID := eventFlag
	if eventID == "" {
		if len(project.Events) == 0 {
			return fmt.Errorf("project has no rainfall events")
		}
		eventID = project.Events[0].ID
	}

	result, err := stormlab.RunSimulation(project, eventID)
	if err != nil {
		return err
	}

	if jsonFlag {
		return printJSON(project, result)
	}
	return printTable(project, result)
}

// summaryRow is the JSON shape of one node's result, deliberately
// omitting the full hydrograph sample array per the --json flag's
// contract.
type summaryRow struct {
	Node           string  `json:"node"`
	Kind           string  `json:"kind"`
	PeakInflow     float64 `json:"peakInflow,omitempty"`
	PeakOutflow    float64 `json:"peakOutflow"`
	TimeOfPeak     float64 `json:"timeOfPeak"`
	VolumeAcFt     float64 `json:"volumeAcFt"`
	PeakStageFt    float64 `json:"peakStageFt,omitempty"`
	PeakStorageFt3 float64 `json:"peakStorageFt3,omitempty"`
}

func printJSON(project *stormlab.Project, result stormlab.SimulationResult) error {
	rows := summaryRows(project, result)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		EventID string       `json:"eventId"`
		Nodes   []summaryRow `json:"nodes"`
	}{EventID: result.EventID, Nodes: rows})
}

func printTable(project *stormlab.Project, result stormlab.SimulationResult) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "Event: %s\n\n", result.EventID)
	fmt.Fprintln(w, "Node\tKind\tPeak Qout (cfs)\tTp (hr)\tVolume (ac-ft)\tPeak Stage (ft)")
	for _, row := range summaryRows(project, result) {
		stage := "-"
		if row.PeakStageFt != 0 {
			stage = fmt.Sprintf("%.2f", row.PeakStageFt)
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%s\n", row.Node, row.Kind, row.PeakOutflow, row.TimeOfPeak, row.VolumeAcFt, stage)
	}
	return w.Flush()
}

func summaryRows(project *stormlab.Project, result stormlab.SimulationResult) []summaryRow {
	rows := make([]summaryRow, 0, len(project.Nodes))
	for _, n := range project.Nodes {
		r := result.Results[n.ID]
		rows = append(rows, summaryRow{
			Node:           n.Name,
			Kind:           n.Data.Kind().String(),
			PeakInflow:     r.PeakInflow,
			PeakOutflow:    r.PeakOutflow,
			TimeOfPeak:     r.TimeOfPeak,
			VolumeAcFt:     r.VolumeAcFt,
			PeakStageFt:    r.PeakStageFt,
			PeakStorageFt3: r.PeakStorageFt3,
		})
	}
	return rows
}
