// Package relation implements BinaryNaturalRelation: a set of pairs (x, y)
// over small nonnegative integers, dense in x and sparse in y.
//
// Representation:
//
//   - rows are stored in a slice indexed directly by x (dense-in-x); an
//     absent/nil row means Y_x = ∅ and costs nothing beyond the slice slot.
//   - each row is one of two encodings, chosen per-row: a simple append-only
//     list (cheap for rows of size ≤ rowPromoteThreshold) or a two-level
//     sparse bit vector (intset.SparseWordSet, cheap for rows that grow
//     large). A row auto-promotes from simple to sparse the first time it
//     exceeds the threshold; promotion is a one-way ratchet and only
//     preserves set equality, not iteration order, across the switch.
//   - Relation's constructor accepts an implementation vector assigning a
//     preferred starting encoding to rows 0..k-1; rows beyond k start with a
//     declared delegate encoding (default: simple, since most rows in an
//     IFDS path-edge table never exceed the promotion threshold).
//
// All operations are total on nonnegative x, y; behavior on negative
// coordinates is undefined, per spec — callers validate at their own
// boundary (relation itself performs none, by design: it is the innermost
// leaf and must stay allocation-free on the hot Add/Contains path).
//
// Related(x) returns a live, read-only Set view aliasing interior storage;
// it is invalidated by the next mutation of that row and must not be
// retained across one.
package relation
