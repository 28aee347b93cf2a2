package draft

import (
	"github.com/SylphxAI/craft/patch"
	"github.com/SylphxAI/craft/pkg/value"
)

// FinalizeWithPatches finalizes like Finalize and additionally returns
// the patch operations describing the applied edits, plus the inverse
// operations that undo them. Patches are computed against the draft's
// live state before finalization consumes it.
//
// Record edits are reported precisely, down to the deepest modified
// node. Sequence edits are reported per index while the edit session
// only replaced, appended or shrank the tail; once slots were tombstoned
// the indices of later items shift, so the generator falls back to
// coarse prefix/tail ops for that node.
func FinalizeWithPatches(v any, cfg *Config) (any, []patch.Op, []patch.Op) {
	d, ok := v.(*Draft)
	if !ok {
		return Finalize(v, cfg), nil, nil
	}
	var ops, inverse []patch.Op
	generatePatches(d.s, nil, &ops, &inverse)
	return Finalize(d, cfg), ops, inverse
}

func generatePatches(s *state, path []any, ops, inverse *[]patch.Op) {
	if !s.modified {
		return
	}
	switch s.kind() {
	case value.KindRecord:
		generateRecordPatches(s, path, ops, inverse)
	case value.KindSequence:
		generateSequencePatches(s, path, ops, inverse)
	}
}

func generateRecordPatches(s *state, path []any, ops, inverse *[]patch.Op) {
	base := s.base.(*value.Record)
	cur := s.latest().(*value.Record)

	for _, k := range base.Keys() {
		if !cur.Has(k) {
			bv, _ := base.Get(k)
			*ops = append(*ops, patch.Op{Kind: patch.Remove, Path: extend(path, k)})
			*inverse = append(*inverse, patch.Op{Kind: patch.Add, Path: extend(path, k), Value: bv})
		}
	}
	for _, k := range cur.Keys() {
		cv, _ := cur.Get(k)
		bv, inBase := base.Get(k)
		if ch, ok := cv.(*Draft); ok {
			// A cached child draft means the entry was descended into,
			// not replaced; its own state says whether anything changed.
			generatePatches(ch.s, extend(path, k), ops, inverse)
			continue
		}
		switch {
		case !inBase:
			*ops = append(*ops, patch.Op{Kind: patch.Add, Path: extend(path, k), Value: resolved(cv)})
			*inverse = append(*inverse, patch.Op{Kind: patch.Remove, Path: extend(path, k)})
		case !value.Same(bv, cv):
			*ops = append(*ops, patch.Op{Kind: patch.Replace, Path: extend(path, k), Value: resolved(cv)})
			*inverse = append(*inverse, patch.Op{Kind: patch.Replace, Path: extend(path, k), Value: bv})
		}
	}
}

func generateSequencePatches(s *state, path []any, ops, inverse *[]patch.Op) {
	baseItems := s.base.(*value.Sequence).Items()
	rawItems := s.logicalItems()

	tombstoned := false
	for _, it := range rawItems {
		if value.IsDeleted(it) {
			tombstoned = true
			break
		}
	}

	if !tombstoned {
		common := min(len(baseItems), len(rawItems))
		for i := 0; i < common; i++ {
			if ch, ok := rawItems[i].(*Draft); ok {
				generatePatches(ch.s, extend(path, i), ops, inverse)
				continue
			}
			if !value.Same(baseItems[i], rawItems[i]) {
				*ops = append(*ops, patch.Op{Kind: patch.Replace, Path: extend(path, i), Value: resolved(rawItems[i])})
				*inverse = append(*inverse, patch.Op{Kind: patch.Replace, Path: extend(path, i), Value: baseItems[i]})
			}
		}
		appendTailOps(baseItems, resolveAll(rawItems), path, ops, inverse)
		return
	}

	// Deletions shifted later indices; compare the compacted logical
	// view coarsely instead of guessing per-slot intent.
	final := resolveAll(compact(rawItems))
	common := min(len(baseItems), len(final))
	for i := 0; i < common; i++ {
		if !value.Same(baseItems[i], final[i]) {
			*ops = append(*ops, patch.Op{Kind: patch.Replace, Path: extend(path, i), Value: final[i]})
			*inverse = append(*inverse, patch.Op{Kind: patch.Replace, Path: extend(path, i), Value: baseItems[i]})
		}
	}
	appendTailOps(baseItems, final, path, ops, inverse)
}

// appendTailOps emits adds for items past the base length, or removes
// for base items past the final length.
func appendTailOps(baseItems, final []any, path []any, ops, inverse *[]patch.Op) {
	switch {
	case len(final) > len(baseItems):
		for i := len(baseItems); i < len(final); i++ {
			*ops = append(*ops, patch.Op{Kind: patch.Add, Path: extend(path, i), Value: final[i]})
		}
		for i := len(final) - 1; i >= len(baseItems); i-- {
			*inverse = append(*inverse, patch.Op{Kind: patch.Remove, Path: extend(path, i)})
		}
	case len(baseItems) > len(final):
		for i := len(baseItems) - 1; i >= len(final); i-- {
			*ops = append(*ops, patch.Op{Kind: patch.Remove, Path: extend(path, i)})
		}
		for i := len(final); i < len(baseItems); i++ {
			*inverse = append(*inverse, patch.Op{Kind: patch.Add, Path: extend(path, i), Value: baseItems[i]})
		}
	}
}

func compact(items []any) []any {
	kept := make([]any, 0, len(items))
	for _, it := range items {
		if !value.IsDeleted(it) {
			kept = append(kept, it)
		}
	}
	return kept
}

func resolveAll(items []any) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = resolved(it)
	}
	return out
}

// resolved turns a stored slot value into its logical value: drafts
// yield their current snapshot, everything else passes through.
func resolved(v any) any {
	if ch, ok := v.(*Draft); ok {
		return ch.s.snapshot()
	}
	return v
}

func extend(path []any, seg any) []any {
	out := make([]any, 0, len(path)+1)
	out = append(out, path...)
	return append(out, seg)
}
