package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/katalvlaran/ltmesh/mesh"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("ltmesh: unknown output format")

// report is the serialized form of a generated mesh.
type report struct {
	N       int       `json:"n" yaml:"n"`
	X0      float64   `json:"x0" yaml:"x0"`
	X1      float64   `json:"x1" yaml:"x1"`
	X2      float64   `json:"x2" yaml:"x2"`
	N1      int       `json:"n1" yaml:"n1"`
	N2      int       `json:"n2" yaml:"n2"`
	Points  []float64 `json:"points" yaml:"points"`
	Weights []float64 `json:"weights,omitempty" yaml:"weights,omitempty"`
}

func newReport(p mesh.Params, n1, n2 int, points, weights []float64) report {
	return report{
		N: p.N, X0: p.X0, X1: p.X1, X2: p.X2,
		N1: n1, N2: n2,
		Points: points, Weights: weights,
	}
}

// render writes r to w in the requested format.
func render(w io.Writer, format string, r report) error {
	switch format {
	case formatJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)

		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}

		return enc.Close()
	case formatTable, "":
		return renderTable(w, r)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

func renderTable(w io.Writer, r report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if r.Weights != nil {
		fmt.Fprintln(tw, "i\tx\tdh\t")
		for i, x := range r.Points {
			fmt.Fprintf(tw, "%d\t%.10g\t%.10g\t\n", i, x, r.Weights[i])
		}
	} else {
		fmt.Fprintln(tw, "i\tx\t")
		for i, x := range r.Points {
			fmt.Fprintf(tw, "%d\t%.10g\t\n", i, x)
		}
	}

	return tw.Flush()
}
