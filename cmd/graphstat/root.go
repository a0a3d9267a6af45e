package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphstat/analysis"
	"github.com/katalvlaran/graphstat/core"
)

var rootCmd = &cobra.Command{
	Use:   "graphstat",
	Short: "Structural statistics, community detection and layout for graphs",
}

func init() {
	rootCmd.AddCommand(analyzeCmd, layoutCmd, listCmd)
}

// readEdges parses a CSV edge list ("u,v" or "u,v,w", weight defaulting to
// 1.0 when omitted) from path, or from stdin when path is "-".
func readEdges(path string) ([]analysis.EdgeInput, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("graphstat: opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var edges []analysis.EdgeInput
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("graphstat: reading %s: %w", path, err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("graphstat: %s: edge record %v needs at least u,v", path, record)
		}
		weight := 1.0
		if len(record) >= 3 && record[2] != "" {
			weight, err = strconv.ParseFloat(record[2], 64)
			if err != nil {
				return nil, fmt.Errorf("graphstat: %s: weight %q: %w", path, record[2], err)
			}
		}
		edges = append(edges, analysis.EdgeInput{
			Source: core.NodeID(record[0]),
			Target: core.NodeID(record[1]),
			Weight: weight,
		})
	}
	return edges, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
