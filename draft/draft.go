package draft

import (
	"github.com/SylphxAI/craft/pkg/value"
)

// Draft is the mutable facade over one node of an immutable value tree.
// Obtain the root with New; nested drafts are handed out by Get and At.
//
// NOT thread-safe. A draft tree belongs to a single edit session.
type Draft struct {
	s *state
}

// New wraps base in a root draft. Non-draftable values (anything that is
// not a *value.Record or *value.Sequence) are returned verbatim: no
// state is allocated for them.
func New(base any) any {
	if !value.Draftable(base) {
		return base
	}
	return newDraft(base, nil)
}

// Kind reports the node's shape: record, sequence, or opaque (never
// opaque in practice, since New refuses to wrap opaque values).
func (d *Draft) Kind() value.Kind {
	return d.s.kind()
}

// Modified reports whether this node or any descendant has been changed.
func (d *Draft) Modified() bool {
	return d.s.modified
}

// Base returns the original value this draft was created from. The base
// is never mutated by the engine.
func (d *Draft) Base() any {
	return d.s.base
}

// Current returns the node's logical value right now, resolving child
// drafts recursively, without finalizing anything. An unmodified draft
// returns its base by reference; a modified one returns a fresh
// snapshot that shares unmodified substructure with the base.
func (d *Draft) Current() any {
	return d.s.snapshot()
}

// Get returns the value stored under key on a record draft. Nested
// records and sequences come back wrapped in child drafts (created on
// first access and cached); scalars and opaque values come back as-is.
// Absent keys and non-record drafts return nil.
func (d *Draft) Get(key string) any {
	s := d.s
	if s.kind() != value.KindRecord {
		return nil
	}
	if ch, ok := s.children[key]; ok {
		return ch
	}
	cur, ok := s.latest().(*value.Record).Get(key)
	if !ok {
		return nil
	}
	if ch, ok := cur.(*Draft); ok {
		return ch
	}
	if !value.Draftable(cur) {
		return cur
	}
	// Only values still reference-identical to the base entry are
	// wrapped; anything already written through Set is a replacement
	// the caller owns, not ours to re-wrap.
	if bv, ok := s.base.(*value.Record).Get(key); !ok || !value.Same(bv, cur) {
		return cur
	}
	rec := s.prepareRecordCopy()
	ch := newDraft(cur, s)
	if s.children == nil {
		s.children = make(map[string]*Draft)
	}
	s.children[key] = ch
	rec.Set(key, ch)
	return ch
}

// Set stores v under key on a record draft. Writing value.Deleted is
// equivalent to Delete. Draft values are unwrapped to their current
// logical value before storing. Writing a value identical to the
// current one is a no-op and does not mark the node modified.
func (d *Draft) Set(key string, v any) {
	s := d.s
	s.assertMutable()
	if s.kind() != value.KindRecord {
		return
	}
	if value.IsDeleted(v) {
		d.Delete(key)
		return
	}
	cur, has := s.latest().(*value.Record).Get(key)
	if ch, ok := v.(*Draft); ok {
		v = ch.s.latestValue()
	}
	if has && value.Same(v, cur) {
		return
	}
	s.markModified()
	s.prepareRecordCopy().Set(key, v)
	delete(s.children, key)
}

// Delete removes key from a record draft. Deleting an absent key is a
// no-op.
func (d *Draft) Delete(key string) {
	s := d.s
	s.assertMutable()
	if s.kind() != value.KindRecord {
		return
	}
	if !s.latest().(*value.Record).Has(key) {
		return
	}
	s.markModified()
	s.prepareRecordCopy().Delete(key)
	delete(s.children, key)
}

// Has reports whether key is present on a record draft, reflecting
// edits already applied in this session.
func (d *Draft) Has(key string) bool {
	s := d.s
	if s.kind() != value.KindRecord {
		return false
	}
	return s.latest().(*value.Record).Has(key)
}

// Keys returns the record draft's field names in sorted order,
// reflecting additions and deletions already applied.
func (d *Draft) Keys() []string {
	s := d.s
	if s.kind() != value.KindRecord {
		return nil
	}
	return s.latest().(*value.Record).Keys()
}

// Len returns the field count for record drafts and the logical length
// for sequence drafts (pending appends included, tombstoned slots still
// counted until finalization).
func (d *Draft) Len() int {
	s := d.s
	switch s.kind() {
	case value.KindRecord:
		return s.latest().(*value.Record).Len()
	case value.KindSequence:
		if s.copy != nil {
			return s.copy.(*value.Sequence).Len()
		}
		return s.base.(*value.Sequence).Len() + len(s.pending)
	}
	return 0
}

// latestValue resolves a node's plain current value for unwrapping:
// copy if present, base otherwise. Unlike snapshot it does not recurse;
// it is what Set stores when handed another draft.
func (s *state) latestValue() any {
	return s.latest()
}

// snapshot computes the logical current value of a node without
// finalizing. Unmodified nodes return their base. Modified nodes return
// a fresh shallow clone with child drafts resolved recursively and
// sequence tombstones compacted out.
func (s *state) snapshot() any {
	if !s.modified {
		return s.base
	}
	switch s.kind() {
	case value.KindRecord:
		out := s.latest().(*value.Record).Clone()
		for _, k := range out.Keys() {
			v, _ := out.Get(k)
			if ch, ok := v.(*Draft); ok {
				out.Set(k, ch.s.snapshot())
			}
		}
		return out
	case value.KindSequence:
		items := s.logicalItems()
		kept := make([]any, 0, len(items))
		for _, it := range items {
			if value.IsDeleted(it) {
				continue
			}
			if ch, ok := it.(*Draft); ok {
				it = ch.s.snapshot()
			}
			kept = append(kept, it)
		}
		return value.SequenceOf(kept)
	}
	return s.base
}

// logicalItems returns the node's raw item view: the copy's items when a
// copy exists, otherwise base items followed by pending appends. Slots
// may hold child drafts and tombstones.
func (s *state) logicalItems() []any {
	if s.copy != nil {
		return s.copy.(*value.Sequence).Items()
	}
	base := s.base.(*value.Sequence).Items()
	if len(s.pending) == 0 {
		return base
	}
	out := make([]any, 0, len(base)+len(s.pending))
	out = append(out, base...)
	out = append(out, s.pending...)
	return out
}
