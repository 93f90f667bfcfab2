// Package matrix offers the row-major dense storage used under sampled fields.
//
// The matrix package provides:
//
//   - Dense, a rows×cols float64 grid stored in one flat slice (offset = i*cols + j).
//   - Safe accessors: At/Set return sentinel errors instead of panicking.
//   - Row/Col copies, a visitor (Do) and an in-place mapper (Apply).
//   - Transpose and a NaN-aware AllClose comparison.
//   - A numeric policy that rejects NaN/±Inf by default, with an opt-in mode
//     that admits NaN as a "masked sample" marker.
//
// Dense is the only storage type; field.Field owns one and never hands out its
// backing slice, so callers can treat a field as immutable.
package matrix
