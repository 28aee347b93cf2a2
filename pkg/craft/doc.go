// Package craft is the public entry point for producing immutable value
// updates through drafts.
//
// # Overview
//
// Produce takes a base value and a recipe. The recipe receives a draft
// of the base, applies imperative-looking edits to it, and Produce
// returns a new immutable value reflecting exactly those edits while
// sharing all untouched substructure with the original:
//
//	base := value.RecordOf(map[string]any{"count": 0})
//	next, err := craft.Produce(base, func(d *draft.Draft) (any, error) {
//		d.Set("count", 1)
//		return nil, nil
//	})
//
// A recipe that returns a non-nil value replaces the result outright:
// the returned value wins and any draft mutations are discarded. Return
// craft.Nothing to make the result nil on purpose. Errors returned by a
// recipe propagate unchanged and abandon the draft.
//
// # Manual drafts
//
// CreateDraft and FinishDraft split the produce cycle for long-lived
// sessions: create now, mutate across an arbitrary span, finalize later.
// An abandoned draft needs no cleanup; dropping the reference is enough.
//
// # Patches
//
// ProduceWithPatches and FinishDraftWithPatches additionally return the
// patch ops describing the edits and their inverses; ApplyPatches
// replays ops against a base.
//
// # Freezing
//
// By default results are deep-frozen, so accidental writes to a
// produced value fail with value.ErrFrozen. SetAutoFreeze toggles the
// process-wide default; WithFreeze overrides it per call.
package craft
