// Package cow provides a reference-counted copy-on-write handle.
//
// Every view of a shared value holds its own *Ref. Share hands out a new Ref
// to the same value in O(1); Mut clones the value first when more than one
// Ref is live, so a write never becomes visible through another view.
//
// The count is an upper bound on the live Refs: Release is called by views
// that are garbage collected (see Track), and a stale count only costs an
// extra copy.
package cow
