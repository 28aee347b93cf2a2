package draft

// IsDraft reports whether v is a draft.
func IsDraft(v any) bool {
	_, ok := v.(*Draft)
	return ok
}

// Original returns the base value behind a draft without touching its
// state. Returns ErrNotADraft for anything else.
func Original(v any) (any, error) {
	d, ok := v.(*Draft)
	if !ok {
		return nil, ErrNotADraft
	}
	return d.s.base, nil
}

// Current returns a draft's logical value right now, without
// finalizing. Returns ErrNotADraft for anything else.
func Current(v any) (any, error) {
	d, ok := v.(*Draft)
	if !ok {
		return nil, ErrNotADraft
	}
	return d.s.snapshot(), nil
}
