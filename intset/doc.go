// Package intset provides the low-level set-of-naturals substrate of the
// module.
//
// Two encodings are available:
//
//   - BitVector    — a dense, word-addressed bit vector. Backs pathedge's
//     identity/zero stores, numgraph's has-successor cache, and the page
//     index of SparseWordSet. relation.Relation does not use it as a row
//     encoding; small rows there are relation's own simple list.
//   - SparseWordSet — a two-level sparse bit vector: naturals are grouped
//     into 64-wide pages, and only pages containing at least one member are
//     stored, popcount-compacted via an outer BitVector over page indices.
//     relation.Relation uses it to encode a large row Y_x = {y : (x, y) ∈ R}.
//
// Both are grounded on github.com/gaissmai/bart's internal/bitset and
// internal/sparse packages (word-level popcount via math/bits, popcount-rank
// indexing into a compacted slice); see DESIGN.md for the mapping.
//
// Nothing in this package is safe for concurrent use; see the module's
// Non-goals.
package intset
