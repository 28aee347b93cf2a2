package craft

import (
	"github.com/SylphxAI/craft/draft"
	"github.com/SylphxAI/craft/patch"
)

// Recipe is an edit function. It receives the root draft (nil when the
// base is not draftable) and may return a replacement result: a non-nil
// return value wins verbatim over any draft mutations. Returning
// (nil, nil) means "use the draft's edits". Errors propagate to the
// caller unchanged and abandon the draft.
type Recipe func(d *draft.Draft) (any, error)

// nothing is the type of the Nothing token.
type nothing struct{ _ byte }

// Nothing is returned from a recipe to make the produced result nil.
// A plain nil return means "no replacement", so an explicit token is
// needed to distinguish "replace with nothing".
var Nothing any = &nothing{}

// Produce applies recipe to a draft of base and returns the resulting
// immutable value. Untouched subtrees of the result are shared with
// base by reference; a recipe that changes nothing yields base itself.
//
// A root draft is always constructed, even for a no-op recipe: one
// allocation, paid for a single code path.
func Produce(base any, recipe Recipe, opts ...Option) (any, error) {
	o := buildOptions(opts)
	root := draft.New(base)
	d, _ := root.(*draft.Draft)
	ret, err := recipe(d)
	if err != nil {
		return nil, err
	}
	if replaced, res := directReturn(d, ret); replaced {
		return draft.Finalize(res, o.config()), nil
	}
	if d == nil {
		return base, nil
	}
	return draft.Finalize(d, o.config()), nil
}

// ProduceWithPatches is Produce plus the patch ops describing the edits
// and the inverse ops that undo them. A direct-return recipe yields a
// single root replace op.
func ProduceWithPatches(base any, recipe Recipe, opts ...Option) (any, []patch.Op, []patch.Op, error) {
	o := buildOptions(opts)
	root := draft.New(base)
	d, _ := root.(*draft.Draft)
	ret, err := recipe(d)
	if err != nil {
		return nil, nil, nil, err
	}
	if replaced, res := directReturn(d, ret); replaced {
		res = draft.Finalize(res, o.config())
		ops := []patch.Op{{Kind: patch.Replace, Value: res}}
		inverse := []patch.Op{{Kind: patch.Replace, Value: base}}
		return res, ops, inverse, nil
	}
	if d == nil {
		return base, nil, nil, nil
	}
	res, ops, inverse := draft.FinalizeWithPatches(d, o.config())
	return res, ops, inverse, nil
}

// Producer returns the curried form of Produce: a function applying a
// fixed recipe to any base.
func Producer(recipe Recipe, opts ...Option) func(base any) (any, error) {
	return func(base any) (any, error) {
		return Produce(base, recipe, opts...)
	}
}

// Pipeline chains recipes: each stage produces from the previous
// stage's result. A stage error stops the chain.
func Pipeline(recipes ...Recipe) func(base any, opts ...Option) (any, error) {
	return func(base any, opts ...Option) (any, error) {
		cur := base
		for _, r := range recipes {
			next, err := Produce(cur, r, opts...)
			if err != nil {
				return nil, err
			}
			cur = next
		}
		return cur, nil
	}
}

// directReturn decides whether the recipe's return value replaces the
// result. Returning the root draft itself counts as "no replacement"
// (the draft's edits are wanted); Nothing maps to a nil result.
func directReturn(d *draft.Draft, ret any) (bool, any) {
	if ret == nil {
		return false, nil
	}
	if rd, ok := ret.(*draft.Draft); ok && rd == d {
		return false, nil
	}
	if ret == Nothing {
		return true, nil
	}
	return true, ret
}
