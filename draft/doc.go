// Package draft implements the mutation-tracking copy-on-write engine.
//
// # Overview
//
// A Draft is a mutable-looking facade over an immutable base value (a
// value.Record or value.Sequence). Edits applied through the draft are
// recorded against lazily created shallow copies; the base is never
// touched. Finalize then produces a new immutable value reflecting
// exactly the edited paths while sharing every untouched subtree with
// the original by reference.
//
// # Key Types
//
//   - Draft: the accessor facade over one node of the tree
//   - Config: finalization settings (freeze mode)
//   - FreezeMode: how aggressively Finalize freezes the result
//
// # Lifecycle
//
// New wraps a draftable base value in a root Draft (non-draftable values
// are returned verbatim, with no state allocated). Nested containers are
// wrapped on first access, not eagerly, so drafting a large document
// costs one allocation until something is touched. Finalize consumes
// the draft tree exactly once:
//
//	d := draft.New(base).(*draft.Draft)
//	d.Set("count", 1)
//	result := draft.Finalize(d, nil)
//
// A draft that is read but never mutated finalizes to the exact original
// reference at every level of nesting.
//
// # Copy-on-write
//
// The first mutation of a node shallow-copies it; later mutations hit
// the same copy. Wrapping a nested container in a child draft also
// forces the parent's copy so the child can be cached in place. This
// trades a little extra copying for a single code path.
// Repeated tail appends take a fast path that defers the copy entirely
// (see Append): each append is amortized O(1) instead of O(n).
//
// # Deletion
//
// Record keys are removed from the copy immediately. Sequence slots are
// overwritten with the value.Deleted tombstone and compacted out at
// finalization, so intermediate index arithmetic stays stable during the
// edit session.
//
// # Kind discipline
//
// Record methods called on a sequence draft (and vice versa) are defined
// no-ops: reads return zero values, writes change nothing. Mutating a
// draft after it has been finalized is a contract violation and panics
// with an error wrapping ErrUseAfterFinalize.
//
// # Thread Safety
//
// NOT thread-safe. One edit session owns a draft tree; there is no
// locking. Abandoning a draft (never finalizing it) has no side effects
// on the base value.
package draft
