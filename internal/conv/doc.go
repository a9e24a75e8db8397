// Package conv validates sizes against the sparse index space.
//
// Sparse storage addresses its cells with uint32 keys. Sizes are checked once
// at construction so the per-cell hot paths can use direct casts.
package conv
