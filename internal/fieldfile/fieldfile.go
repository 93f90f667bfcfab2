// SPDX-License-Identifier: MIT

// Package fieldfile reads and writes sampled fields as JSON or YAML documents:
//
//	{"producer": "psf", "x": [-1, 0, 1], "y": [-1, 0, 1],
//	 "values": [[0, 1, 0], [1, 4, 1], [0, 1, null]]}
//
// values[i][j] is the sample at (x[j], y[i]); null marks a masked sample.
// A missing axis is generated as field.CenteredAxis(n, dx) (or dy), with the
// spacing defaulting to 1.
package fieldfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/fieldprof/field"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format int

const (
	// JSON documents (default).
	JSON Format = iota
	// YAML documents.
	YAML
)

var (
	// ErrEmpty indicates a document without sample rows.
	ErrEmpty = errors.New("fieldfile: no samples")

	// ErrSpacing indicates a non-positive or non-finite dx/dy.
	ErrSpacing = errors.New("fieldfile: invalid axis spacing")
)

// Document is the on-disk form of a field.
type Document struct {
	Producer string       `json:"producer,omitempty" yaml:"producer,omitempty"`
	X        []float64    `json:"x,omitempty" yaml:"x,omitempty"`
	Y        []float64    `json:"y,omitempty" yaml:"y,omitempty"`
	DX       float64      `json:"dx,omitempty" yaml:"dx,omitempty"`
	DY       float64      `json:"dy,omitempty" yaml:"dy,omitempty"`
	Values   [][]*float64 `json:"values" yaml:"values"`
}

// FormatOf picks the format from a file extension: .yaml and .yml are YAML,
// anything else JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}

	return JSON
}

// Load reads the field stored at path.
// producer is used when the document does not name one.
func Load(path string, producer field.Producer) (*field.Field, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := Decode(fh, FormatOf(path), producer)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Decode reads one document from r and builds the field.
func Decode(r io.Reader, format Format, producer field.Producer) (*field.Field, error) {
	var doc Document
	switch format {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}

	return doc.Field(producer)
}

// Field converts the document. fallback is used when Producer is empty.
func (d *Document) Field(fallback field.Producer) (*field.Field, error) {
	if len(d.Values) == 0 || len(d.Values[0]) == 0 {
		return nil, ErrEmpty
	}
	producer := fallback
	if d.Producer != "" {
		p, err := field.ParseProducer(d.Producer)
		if err != nil {
			return nil, err
		}
		producer = p
	}

	rows := make([][]float64, len(d.Values))
	for i, row := range d.Values {
		rows[i] = make([]float64, len(row))
		for j, v := range row {
			if v == nil {
				rows[i][j] = math.NaN()
				continue
			}
			rows[i][j] = *v
		}
	}
	x, err := axisOrCentered(d.X, len(d.Values[0]), d.DX)
	if err != nil {
		return nil, fmt.Errorf("x: %w", err)
	}
	y, err := axisOrCentered(d.Y, len(d.Values), d.DY)
	if err != nil {
		return nil, fmt.Errorf("y: %w", err)
	}

	return field.FromRows(rows, x, y, field.WithProducer(producer))
}

func axisOrCentered(axis []float64, n int, spacing float64) ([]float64, error) {
	if len(axis) > 0 {
		return axis, nil
	}
	if spacing == 0 {
		spacing = 1
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, fmt.Errorf("spacing %g: %w", spacing, ErrSpacing)
	}

	return field.CenteredAxis(n, spacing)
}

// FromField builds the document of f; NaN samples become null.
func FromField(f *field.Field) Document {
	rows, cols := f.Shape()
	doc := Document{
		Producer: f.Producer().String(),
		X:        f.X(),
		Y:        f.Y(),
		Values:   make([][]*float64, rows),
	}
	for i := range doc.Values {
		row, _ := f.Row(i) // i < rows
		doc.Values[i] = make([]*float64, cols)
		for j, v := range row {
			if !math.IsNaN(v) {
				doc.Values[i][j] = &row[j]
			}
		}
	}

	return doc
}

// Encode writes f to w in the given format.
func Encode(w io.Writer, f *field.Field, format Format) error {
	doc := FromField(f)
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		if err := json.NewEncoder(w).Encode(&doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
