package craft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SylphxAI/craft/draft"
	"github.com/SylphxAI/craft/pkg/value"
)

func TestCreateAndFinishDraft(t *testing.T) {
	disableFreeze(t)
	base := userBase()

	d := CreateDraft(base)
	require.True(t, IsDraft(d))

	d.(*draft.Draft).Set("role", "editor")
	res, err := FinishDraft(d)
	require.NoError(t, err)

	role, _ := res.(*value.Record).Get("role")
	assert.Equal(t, "editor", role)
	assert.False(t, base.Has("role"))
}

func TestCreateDraftOpaquePassthrough(t *testing.T) {
	d := CreateDraft(42)
	assert.Equal(t, 42, d)
	assert.False(t, IsDraft(d))
}

func TestFinishDraftRejectsNonDrafts(t *testing.T) {
	_, err := FinishDraft(userBase())
	assert.ErrorIs(t, err, draft.ErrNotADraft)

	_, _, _, err = FinishDraftWithPatches("nope")
	assert.ErrorIs(t, err, draft.ErrNotADraft)
}

func TestFinishDraftWithPatches(t *testing.T) {
	disableFreeze(t)
	base := userBase()

	d := CreateDraft(base)
	d.(*draft.Draft).Set("role", "editor")

	res, ops, inverse, err := FinishDraftWithPatches(d)
	require.NoError(t, err)

	role, _ := res.(*value.Record).Get("role")
	assert.Equal(t, "editor", role)
	require.Len(t, ops, 1)
	assert.Equal(t, []any{"role"}, ops[0].Path)
	require.Len(t, inverse, 1)
}

func TestOriginalAndCurrent(t *testing.T) {
	disableFreeze(t)
	base := userBase()

	d := CreateDraft(base).(*draft.Draft)
	d.Set("role", "editor")

	orig, err := Original(d)
	require.NoError(t, err)
	assert.Same(t, any(base), orig)
	assert.False(t, orig.(*value.Record).Has("role"))

	cur, err := Current(d)
	require.NoError(t, err)
	role, _ := cur.(*value.Record).Get("role")
	assert.Equal(t, "editor", role)

	_, err = Original("not a draft")
	assert.ErrorIs(t, err, draft.ErrNotADraft)
	_, err = Current("not a draft")
	assert.ErrorIs(t, err, draft.ErrNotADraft)
}

func TestAbandonedDraftHasNoEffect(t *testing.T) {
	disableFreeze(t)
	base := userBase()

	d := CreateDraft(base).(*draft.Draft)
	d.Set("role", "editor")
	// Never finished: the session is simply dropped.

	assert.False(t, base.Has("role"))
}
