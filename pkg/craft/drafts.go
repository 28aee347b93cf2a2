package craft

import (
	"github.com/SylphxAI/craft/draft"
	"github.com/SylphxAI/craft/patch"
)

// CreateDraft opens a manual draft session over base. Non-draftable
// bases are returned verbatim. The session has no timeout: mutate the
// draft for as long as needed, then call FinishDraft, or drop it to
// abandon the edits with no effect on base.
func CreateDraft(base any) any {
	return draft.New(base)
}

// FinishDraft finalizes a manual draft into its immutable result.
// Returns draft.ErrNotADraft if v did not come from CreateDraft.
func FinishDraft(v any, opts ...Option) (any, error) {
	d, ok := v.(*draft.Draft)
	if !ok {
		return nil, draft.ErrNotADraft
	}
	o := buildOptions(opts)
	return draft.Finalize(d, o.config()), nil
}

// FinishDraftWithPatches is FinishDraft plus patches and inverse
// patches for the session's edits.
func FinishDraftWithPatches(v any, opts ...Option) (any, []patch.Op, []patch.Op, error) {
	d, ok := v.(*draft.Draft)
	if !ok {
		return nil, nil, nil, draft.ErrNotADraft
	}
	o := buildOptions(opts)
	res, ops, inverse := draft.FinalizeWithPatches(d, o.config())
	return res, ops, inverse, nil
}

// IsDraft reports whether v is a live or finalized draft.
func IsDraft(v any) bool {
	return draft.IsDraft(v)
}

// Original returns the pre-edit base behind a draft. Returns
// draft.ErrNotADraft for anything else.
func Original(v any) (any, error) {
	return draft.Original(v)
}

// Current returns a draft's logical value without finalizing it.
// Returns draft.ErrNotADraft for anything else.
func Current(v any) (any, error) {
	return draft.Current(v)
}
