package cow

import (
	"runtime"
	"sync/atomic"
)

type box[T any] struct {
	v    T
	refs atomic.Int64
}

// Ref is one view's handle on a possibly shared value.
//
// A Ref itself is not safe for concurrent use; distinct Refs of the same value are.
type Ref[T any] struct {
	b        *box[T]
	released atomic.Bool
}

// New wraps v in an exclusively owned Ref.
func New[T any](v T) *Ref[T] {
	b := &box[T]{v: v}
	b.refs.Store(1)
	return &Ref[T]{b: b}
}

// Share returns a new Ref to the same value.
func (r *Ref[T]) Share() *Ref[T] {
	r.b.refs.Add(1)
	return &Ref[T]{b: r.b}
}

// Load returns the value for reading. Callers must not mutate it.
func (r *Ref[T]) Load() T {
	return r.b.v
}

// Shared reports whether other Refs may observe the value.
func (r *Ref[T]) Shared() bool {
	return r.b.refs.Load() > 1
}

// Mut returns the value for writing. If the value is shared it is replaced by
// clone(value) first and this Ref drops its claim on the old one. copied
// reports whether a clone happened.
func (r *Ref[T]) Mut(clone func(T) T) (v T, copied bool) {
	if r.b.refs.Load() > 1 {
		nb := &box[T]{v: clone(r.b.v)}
		nb.refs.Store(1)
		r.b.refs.Add(-1)
		r.b = nb
		copied = true
	}
	return r.b.v, copied
}

// Release drops this Ref's claim. Only the first call has an effect, and the
// Ref must not be written through afterwards. Release never modifies the
// handle itself, so it may race with Load and Share on the same Ref.
func (r *Ref[T]) Release() {
	if r.released.Swap(true) {
		return
	}
	r.b.refs.Add(-1)
}

// Track releases r once owner becomes unreachable. Callers must keep owner
// alive (runtime.KeepAlive) across Mut and across any read of the loaded
// value that may overlap a write through another Ref.
func Track[O, T any](owner *O, r *Ref[T]) {
	runtime.AddCleanup(owner, func(r *Ref[T]) { r.Release() }, r)
}
