package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rjones30/diracxx/xsect"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validFormat(f string) bool {
	return f == formatTable || f == formatJSON || f == formatYAML
}

// report is the document every scan command prints.
type report struct {
	Reaction  string             `json:"reaction" yaml:"reaction"`
	Units     string             `json:"units" yaml:"units"`
	Constants xsect.Constants    `json:"constants" yaml:"constants"`
	Columns   []string           `json:"columns" yaml:"columns"`
	Rows      [][]float64        `json:"rows" yaml:"rows"`
	Summary   map[string]float64 `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// write renders v in the given format. Table output is only defined for a
// report; other values fall back to YAML.
func write(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatTable:
		if r, ok := v.(report); ok {
			return writeTable(w, r)
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeTable(w io.Writer, r report) error {
	fmt.Fprintf(w, "# %s, %s\n", r.Reaction, r.Units)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(r.Columns, "\t")+"\t")
	for _, row := range r.Rows {
		cells := make([]string, len(row))
		for i, x := range row {
			cells[i] = fmt.Sprintf("%.6g", x)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, k := range []string{"mean", "stddev"} {
		if x, ok := r.Summary[k]; ok {
			fmt.Fprintf(w, "# %s %.9f\n", k, x)
		}
	}
	return nil
}
