package draft

import (
	"github.com/SylphxAI/craft/pkg/value"
)

// At returns the item at index i on a sequence draft. Nested containers
// come back wrapped in child drafts; scalars come back as-is. Indices in
// the pending-append range resolve without materializing the copy.
// Out-of-range indices, tombstoned slots and non-sequence drafts return
// nil.
func (d *Draft) At(i int) any {
	s := d.s
	if s.kind() != value.KindSequence || i < 0 {
		return nil
	}
	if s.copy == nil && len(s.pending) > 0 {
		baseLen := s.base.(*value.Sequence).Len()
		if i >= baseLen {
			j := i - baseLen
			if j >= len(s.pending) {
				return nil
			}
			pv := s.pending[j]
			if ch, ok := pv.(*Draft); ok {
				return ch
			}
			if value.Draftable(pv) {
				// Replace the pending slot with the child so repeated
				// reads return the same draft.
				ch := newDraft(pv, s)
				s.pending[j] = ch
				return ch
			}
			return pv
		}
		bv, ok := s.base.(*value.Sequence).At(i)
		if !ok {
			return nil
		}
		if !value.Draftable(bv) {
			// Plain read of a base element: the fast path survives.
			return bv
		}
		// Wrapping a base element needs the copy, which ends the fast
		// path.
		s.materialize()
	}
	cur, ok := s.latest().(*value.Sequence).At(i)
	if !ok || value.IsDeleted(cur) {
		return nil
	}
	if ch, ok := cur.(*Draft); ok {
		return ch
	}
	if !value.Draftable(cur) {
		return cur
	}
	if bv, ok := s.base.(*value.Sequence).At(i); !ok || !value.Same(bv, cur) {
		return cur
	}
	seq := s.materialize()
	ch := newDraft(cur, s)
	seq.Set(i, ch)
	return ch
}

// SetAt stores v at index i on a sequence draft. Pending appends are
// materialized first, since a random-index write invalidates the fast
// path. Writing value.Deleted is equivalent to DeleteAt. Out-of-range
// indices are no-ops.
func (d *Draft) SetAt(i int, v any) {
	s := d.s
	s.assertMutable()
	if s.kind() != value.KindSequence || i < 0 {
		return
	}
	if value.IsDeleted(v) {
		d.DeleteAt(i)
		return
	}
	if len(s.pending) > 0 {
		s.materialize()
	}
	cur, ok := s.latest().(*value.Sequence).At(i)
	if !ok {
		return
	}
	if ch, ok := v.(*Draft); ok {
		v = ch.s.latestValue()
	}
	if value.Same(v, cur) {
		return
	}
	s.markModified()
	s.materialize().Set(i, v)
}

// DeleteAt marks the slot at index i for removal. The slot is
// overwritten with the deletion tombstone and compacted out at
// finalization; the sequence's length is unchanged until then.
// Out-of-range indices and already-deleted slots are no-ops.
func (d *Draft) DeleteAt(i int) {
	s := d.s
	s.assertMutable()
	if s.kind() != value.KindSequence || i < 0 {
		return
	}
	if len(s.pending) > 0 {
		s.materialize()
	}
	cur, ok := s.latest().(*value.Sequence).At(i)
	if !ok || value.IsDeleted(cur) {
		return
	}
	s.markModified()
	s.materialize().Set(i, value.Deleted)
}

// Append adds items at the tail of a sequence draft and returns the new
// logical length.
//
// While no copy exists, appends accumulate in a side list instead of
// duplicating the sequence, so N sequential appends cost O(N) total
// rather than O(N²). The side list is folded into the copy the first
// time something forces one: a random-index write, wrapping an element
// in a child draft, or finalization.
func (d *Draft) Append(items ...any) int {
	s := d.s
	s.assertMutable()
	if s.kind() != value.KindSequence {
		return 0
	}
	if len(items) == 0 {
		return d.Len()
	}
	for i, it := range items {
		if ch, ok := it.(*Draft); ok {
			items[i] = ch.s.latestValue()
		}
	}
	s.markModified()
	if s.copy != nil {
		s.copy.(*value.Sequence).Append(items...)
	} else {
		s.pending = append(s.pending, items...)
	}
	return d.Len()
}

// Insert places items before index i, materializing pending appends and
// copying on write. i equal to the current length appends. Out-of-range
// indices are no-ops.
func (d *Draft) Insert(i int, items ...any) {
	s := d.s
	s.assertMutable()
	if s.kind() != value.KindSequence || i < 0 || len(items) == 0 {
		return
	}
	if i > d.Len() {
		return
	}
	for j, it := range items {
		if ch, ok := it.(*Draft); ok {
			items[j] = ch.s.latestValue()
		}
	}
	s.markModified()
	s.materialize().Insert(i, items...)
}

// Splice removes deleteCount items starting at start and inserts items
// in their place, shifting later items immediately (unlike DeleteAt,
// which tombstones). Out-of-range starts are no-ops; deleteCount is
// clamped to the available items.
func (d *Draft) Splice(start, deleteCount int, items ...any) {
	s := d.s
	s.assertMutable()
	if s.kind() != value.KindSequence || start < 0 || deleteCount < 0 {
		return
	}
	if start > d.Len() {
		return
	}
	if deleteCount == 0 && len(items) == 0 {
		return
	}
	for j, it := range items {
		if ch, ok := it.(*Draft); ok {
			items[j] = ch.s.latestValue()
		}
	}
	s.markModified()
	seq := s.materialize()
	if n := seq.Len() - start; deleteCount > n {
		deleteCount = n
	}
	for k := 0; k < deleteCount; k++ {
		seq.Remove(start)
	}
	if len(items) > 0 {
		seq.Insert(start, items...)
	}
}

// Pop removes and returns the last item, or nil on an empty (or
// non-sequence) draft. The item is returned as stored: a wrapped child
// comes back as its draft.
func (d *Draft) Pop() any {
	return d.removeEnd(true)
}

// Shift removes and returns the first item, or nil on an empty (or
// non-sequence) draft.
func (d *Draft) Shift() any {
	return d.removeEnd(false)
}

func (d *Draft) removeEnd(last bool) any {
	s := d.s
	s.assertMutable()
	if s.kind() != value.KindSequence {
		return nil
	}
	seq := s.materialize()
	if seq.Len() == 0 {
		return nil
	}
	i := 0
	if last {
		i = seq.Len() - 1
	}
	v, _ := seq.At(i)
	s.markModified()
	seq.Remove(i)
	if value.IsDeleted(v) {
		return nil
	}
	return v
}

// Sort reorders the sequence by less. The comparator sees items as
// stored, so nested containers that were already wrapped arrive as
// *Draft values; unwrap with Current if needed.
func (d *Draft) Sort(less func(a, b any) bool) {
	s := d.s
	s.assertMutable()
	if s.kind() != value.KindSequence {
		return
	}
	s.markModified()
	s.materialize().Sort(less)
}

// Reverse reverses the sequence order.
func (d *Draft) Reverse() {
	s := d.s
	s.assertMutable()
	if s.kind() != value.KindSequence {
		return
	}
	s.markModified()
	s.materialize().Reverse()
}
