// Package render turns named profiles into visual (or tabular) output.
//
// A Plot is a resolved rendering request: one or more profiles fetched from
// a Source by name, a Style per series, and the axis layout (scale, inversion,
// limits) plus legend and label toggles. Style options take either a single
// value applied to every series or one value per name, matched by position.
//
// Renderer is the drawing contract. Two implementations ship here:
// TableRenderer (CSV/TSV text, one row per point) and JSONRenderer.
// Graphical back-ends implement the same interface out of tree.
//
//	p, _ := render.NewPlot(extractor, []string{"x", "azavg"},
//		render.WithAlphas(1, 0.5), render.WithScale(render.AxisY, render.Log))
//	var t render.TableRenderer
//	_ = t.Render(ctx, p)
//	fmt.Print(t.String())
package render
