// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// TableRenderer writes a Plot as delimited text, one row per visible point:
//
//	profile,coord,value
//	x,-2,0.018
//	...
//
// Layout mapping:
//   - Labels toggles the header row; Legend toggles the profile column.
//   - Limits and log scales drop the points they exclude (see Plot.Visible).
//   - An inverted x-axis lists each series from high to low coordinate.
//     Value-axis inversion has no tabular form and is ignored.
//   - Series are listed by ascending z-order (stable); Alpha == 0 hides one.
//
// A nil W renders into an internal buffer read back with String.
type TableRenderer struct {
	W     io.Writer
	Comma rune // field delimiter; 0 means ','

	buf bytes.Buffer
}

var _ Renderer = (*TableRenderer)(nil)

// Render implements Renderer.
func (t *TableRenderer) Render(ctx context.Context, p *Plot) error {
	if p == nil {
		return fmt.Errorf("TableRenderer.Render: %w", ErrNilPlot)
	}
	w := t.W
	if w == nil {
		t.buf.Reset()
		w = &t.buf
	}
	cw := csv.NewWriter(w)
	if t.Comma != 0 {
		cw.Comma = t.Comma
	}

	if p.Labels() {
		if err := cw.Write(t.row(p, "profile", "coord", "value")); err != nil {
			return fmt.Errorf("TableRenderer.Render: %w", err)
		}
	}
	for _, s := range p.DrawOrder() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Style.Alpha == 0 {
			continue
		}
		coords, values := p.Visible(s)
		if p.Inverted(AxisX) {
			slices.Reverse(coords)
			slices.Reverse(values)
		}
		for i := range coords {
			rec := t.row(p, s.Name, formatFloat(coords[i]), formatFloat(values[i]))
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("TableRenderer.Render(%s): %w", s.Name, err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// String returns the output of the last Render into the internal buffer.
func (t *TableRenderer) String() string { return t.buf.String() }

func (t *TableRenderer) row(p *Plot, name, coord, value string) []string {
	if p.Legend() {
		return []string{name, coord, value}
	}

	return []string{coord, value}
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
