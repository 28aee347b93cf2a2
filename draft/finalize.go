package draft

import (
	"github.com/SylphxAI/craft/pkg/value"
)

// FreezeMode controls how Finalize hardens the result against further
// writes.
type FreezeMode int

const (
	// FreezeNone leaves the result mutable.
	FreezeNone FreezeMode = iota

	// FreezeShallow freezes only the top-level container of the result.
	FreezeShallow

	// FreezeDeep freezes the whole result tree, shared base subtrees
	// included.
	FreezeDeep
)

// Config carries finalization settings. It is threaded explicitly
// rather than read from process state, so tests can pin behavior; the
// craft facade holds the process-wide default.
type Config struct {
	// Freeze selects the freeze mode applied to the result.
	Freeze FreezeMode
}

// Finalize converts a draft into its resulting immutable value. Values
// that are not drafts are returned unchanged, frozen per cfg.
//
// Unmodified nodes finalize to their base by reference, so untouched
// subtrees stay pointer-identical to the original at every level.
// Sequence tombstones are compacted out, pending appends are merged,
// and nested drafts are resolved recursively, each node exactly once.
// A nil cfg means no freezing.
func Finalize(v any, cfg *Config) any {
	if cfg == nil {
		cfg = &Config{}
	}
	d, ok := v.(*Draft)
	if !ok {
		applyFreeze(v, cfg.Freeze)
		return v
	}
	res := finalizeState(d.s)
	applyFreeze(res, cfg.Freeze)
	return res
}

func applyFreeze(v any, mode FreezeMode) {
	switch mode {
	case FreezeShallow:
		value.Freeze(v, false)
	case FreezeDeep:
		value.Freeze(v, true)
	}
}

// finalizeState resolves one node. Idempotent: a second call returns the
// previously computed result without re-processing.
func finalizeState(s *state) any {
	if s.finalized {
		if s.copy != nil {
			return s.copy
		}
		return s.base
	}
	s.finalized = true
	s.revoked = true
	if !s.modified {
		return s.base
	}

	switch s.kind() {
	case value.KindRecord:
		// modified implies the copy exists: every record mutation path
		// creates it first.
		rec := s.copy.(*value.Record)
		for _, k := range rec.Keys() {
			v, _ := rec.Get(k)
			if ch, ok := v.(*Draft); ok {
				rec.Set(k, finalizeState(ch.s))
			}
		}
		return rec

	case value.KindSequence:
		// Appends that were never read back may still be pending.
		seq := s.materialize()
		items := seq.Items()
		kept := items[:0]
		compacted := false
		for _, it := range items {
			if value.IsDeleted(it) {
				compacted = true
				continue
			}
			if ch, ok := it.(*Draft); ok {
				it = finalizeState(ch.s)
			}
			kept = append(kept, it)
		}
		if compacted {
			s.copy = value.SequenceOf(kept)
		} else {
			for i, it := range kept {
				seq.Set(i, it)
			}
		}
		return s.copy
	}
	return s.base
}
