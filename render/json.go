// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

// JSONRenderer writes a Plot as one JSON document holding the visible points
// of every series (in draw order) and the axis layout. Masked (NaN) values
// are written as null.
type JSONRenderer struct {
	W      io.Writer
	Indent string // "" writes compact JSON
}

var _ Renderer = (*JSONRenderer)(nil)

type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

type jsonSeries struct {
	Name   string      `json:"name"`
	Coords []jsonFloat `json:"coords"`
	Values []jsonFloat `json:"values"`
	Style  Style       `json:"style"`
}

type jsonAxis struct {
	Scale  string      `json:"scale"`
	Invert bool        `json:"invert,omitempty"`
	Limits []jsonFloat `json:"limits,omitempty"`
}

type jsonPlot struct {
	Series []jsonSeries `json:"series"`
	X      jsonAxis     `json:"x"`
	Y      jsonAxis     `json:"y"`
	Legend bool         `json:"legend"`
	Labels bool         `json:"labels"`
}

// Render implements Renderer.
func (r *JSONRenderer) Render(ctx context.Context, p *Plot) error {
	if p == nil {
		return fmt.Errorf("JSONRenderer.Render: %w", ErrNilPlot)
	}
	if r.W == nil {
		return fmt.Errorf("JSONRenderer.Render: %w", ErrNilWriter)
	}
	doc := jsonPlot{
		X:      p.jsonAxis(AxisX),
		Y:      p.jsonAxis(AxisY),
		Legend: p.Legend(),
		Labels: p.Labels(),
	}
	for _, s := range p.DrawOrder() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Style.Alpha == 0 {
			continue
		}
		coords, values := p.Visible(s)
		doc.Series = append(doc.Series, jsonSeries{
			Name:   s.Name,
			Coords: toJSON(coords),
			Values: toJSON(values),
			Style:  s.Style,
		})
	}

	enc := json.NewEncoder(r.W)
	enc.SetIndent("", r.Indent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("JSONRenderer.Render: %w", err)
	}

	return nil
}

func (p *Plot) jsonAxis(a Axis) jsonAxis {
	ax := jsonAxis{Scale: p.Scale(a).String(), Invert: p.Inverted(a)}
	if l := p.Limits(a); l.Set {
		ax.Limits = []jsonFloat{jsonFloat(l.Lo), jsonFloat(l.Hi)}
	}

	return ax
}

func toJSON(vs []float64) []jsonFloat {
	out := make([]jsonFloat, len(vs))
	for i, v := range vs {
		out[i] = jsonFloat(v)
	}

	return out
}
