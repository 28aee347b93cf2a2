package draft

import (
	"fmt"

	"github.com/SylphxAI/craft/pkg/value"
)

// state is the per-node bookkeeping record behind a Draft. One state
// exists per live draft; together they form a tree mirroring the nesting
// of the base value, populated lazily as nodes are accessed.
type state struct {
	// base is the original value this node was created from. Never
	// mutated; only referenced.
	base any

	// copy is the shallow duplicate receiving in-place edits. nil until
	// the first mutation (or first child wrap) of this node. Once
	// created it is never discarded.
	copy any

	// parent links to the enclosing node's state, nil at the root. Used
	// only to propagate the modified flag upward.
	parent *state

	// children caches record child drafts by key, so repeated access to
	// the same nested value wraps it once. Sequence children live
	// directly in the copy (or pending) slot that produced them.
	children map[string]*Draft

	// pending holds appended sequence items not yet merged into copy.
	// Non-empty only while copy is nil; materialize folds it in.
	pending []any

	// modified is true once this node or any descendant changed. If set
	// on a node it is set on every ancestor (propagation is immediate).
	modified bool

	// finalized guards against finalizing the same node twice.
	finalized bool

	// revoked marks a state whose draft must no longer be mutated.
	revoked bool
}

// newDraft allocates a state for base and binds a Draft to it. The
// caller must ensure base is draftable.
func newDraft(base any, parent *state) *Draft {
	return &Draft{s: &state{base: base, parent: parent}}
}

// kind classifies the node by its base value.
func (s *state) kind() value.Kind {
	return value.KindOf(s.base)
}

// latest returns the current source of truth: the copy once it exists,
// the base before that. Pending appends are not reflected here.
func (s *state) latest() any {
	if s.copy != nil {
		return s.copy
	}
	return s.base
}

// markModified flags this node and every ancestor. Stops early at the
// first already-modified ancestor, whose own ancestors are flagged by
// invariant.
func (s *state) markModified() {
	for n := s; n != nil && !n.modified; n = n.parent {
		n.modified = true
	}
}

// assertMutable panics if the state has been finalized. Mutating a dead
// draft is a caller bug; failing loudly beats corrupting a result that
// was already handed out.
func (s *state) assertMutable() {
	if s.finalized || s.revoked {
		panic(fmt.Errorf("%w: draft mutated after finalization", ErrUseAfterFinalize))
	}
}

// prepareRecordCopy creates the shallow copy of a record node on first
// use.
func (s *state) prepareRecordCopy() *value.Record {
	if s.copy == nil {
		s.copy = s.base.(*value.Record).Clone()
	}
	return s.copy.(*value.Record)
}

// materialize folds pending appends into a freshly created sequence
// copy. Called before any operation that invalidates the append fast
// path: a random-index write, wrapping a base element in a child draft,
// or finalization. No-op once a copy exists.
func (s *state) materialize() *value.Sequence {
	if s.copy == nil {
		c := s.base.(*value.Sequence).Clone()
		c.Append(s.pending...)
		s.copy = c
	}
	s.pending = nil
	return s.copy.(*value.Sequence)
}
