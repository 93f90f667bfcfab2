// SPDX-License-Identifier: MIT

package sampler

// Kernels work in index space: (i, ti) is the row cell and fraction from
// field.LocateY, (j, tj) the column cell and fraction from field.LocateX.
// Every node read goes through Sampler.node, which clamps indices, so a
// kernel never leaves the grid.

type kernel func(s *Sampler, i int, ti float64, j int, tj float64) float64

var kernels = [methodCount]kernel{
	Nearest:  (*Sampler).nearest,
	Bilinear: (*Sampler).bilinear,
	Bicubic:  (*Sampler).bicubic,
}

// nearest rounds each fraction; t == 0.5 keeps the lower index.
func (s *Sampler) nearest(i int, ti float64, j int, tj float64) float64 {
	if ti > 0.5 {
		i++
	}
	if tj > 0.5 {
		j++
	}

	return s.node(i, j)
}

func (s *Sampler) bilinear(i int, ti float64, j int, tj float64) float64 {
	top := lerp(s.node(i, j), s.node(i, j+1), tj)
	if ti == 0 {
		return top
	}
	bottom := lerp(s.node(i+1, j), s.node(i+1, j+1), tj)

	return lerp(top, bottom, ti)
}

func (s *Sampler) bicubic(i int, ti float64, j int, tj float64) float64 {
	var rows [4]float64
	for k := range rows {
		r := i - 1 + k
		rows[k] = catmullRom(s.node(r, j-1), s.node(r, j), s.node(r, j+1), s.node(r, j+2), tj)
	}

	return catmullRom(rows[0], rows[1], rows[2], rows[3], ti)
}

// lerp blends a and b. The end points are returned unchanged, so a masked
// (NaN) neighbor never leaks into an exact node hit.
func lerp(a, b, t float64) float64 {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}

	return (1-t)*a + t*b
}

// catmullRom evaluates the Catmull-Rom spline through p1 (t=0) and p2 (t=1).
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	switch t {
	case 0:
		return p1
	case 1:
		return p2
	}
	t2 := t * t
	t3 := t2 * t

	return 0.5 * (2*p1 +
		(p2-p0)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(3*p1-p0-3*p2+p3)*t3)
}
