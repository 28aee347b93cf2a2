package draft

import "errors"

var (
	// ErrNotADraft indicates a value that is not a *Draft was passed to
	// a helper that requires one.
	ErrNotADraft = errors.New("draft: not a draft")

	// ErrUseAfterFinalize indicates a mutation through a draft whose
	// state has already been finalized.
	ErrUseAfterFinalize = errors.New("draft: use after finalize")
)
