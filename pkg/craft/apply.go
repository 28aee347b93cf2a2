package craft

import (
	"errors"
	"fmt"

	"github.com/SylphxAI/craft/draft"
	"github.com/SylphxAI/craft/patch"
	"github.com/SylphxAI/craft/pkg/value"
)

var (
	// ErrPatchPath indicates a patch path that does not resolve against
	// the document.
	ErrPatchPath = errors.New("craft: patch path does not resolve")

	// ErrRootPatch indicates a root-replacement op mixed with other ops.
	ErrRootPatch = errors.New("craft: root replacement must be the only op")
)

// ApplyPatches replays patch ops against base through a produce
// session, yielding a structurally shared result. Sequence removals
// shift later items immediately (RFC 6902 semantics). A replace with an
// empty path swaps the whole document and must be the only op.
func ApplyPatches(base any, ops []patch.Op, opts ...Option) (any, error) {
	if len(ops) == 1 && len(ops[0].Path) == 0 {
		op := ops[0]
		if op.Kind == patch.Remove {
			return nil, nil
		}
		o := buildOptions(opts)
		return draft.Finalize(value.FromAny(op.Value), o.config()), nil
	}
	return Produce(base, func(d *draft.Draft) (any, error) {
		for i, op := range ops {
			if len(op.Path) == 0 {
				return nil, fmt.Errorf("%w: op %d", ErrRootPatch, i)
			}
			if err := applyOp(d, op); err != nil {
				return nil, fmt.Errorf("op %d (%s %s): %w", i, op.Kind, op.Pointer(), err)
			}
		}
		return nil, nil
	}, opts...)
}

func applyOp(d *draft.Draft, op patch.Op) error {
	node := any(d)
	for _, seg := range op.Path[:len(op.Path)-1] {
		nd, ok := node.(*draft.Draft)
		if !ok {
			return ErrPatchPath
		}
		switch s := seg.(type) {
		case string:
			node = nd.Get(s)
		case int:
			node = nd.At(s)
		default:
			return fmt.Errorf("%w: segment %v", ErrPatchPath, seg)
		}
	}
	nd, ok := node.(*draft.Draft)
	if !ok {
		return ErrPatchPath
	}

	val := value.FromAny(op.Value)
	switch seg := op.Path[len(op.Path)-1].(type) {
	case string:
		if nd.Kind() != value.KindRecord {
			return ErrPatchPath
		}
		switch op.Kind {
		case patch.Add, patch.Replace:
			nd.Set(seg, val)
		case patch.Remove:
			nd.Delete(seg)
		}
	case int:
		if nd.Kind() != value.KindSequence {
			return ErrPatchPath
		}
		switch op.Kind {
		case patch.Add:
			if seg >= nd.Len() {
				nd.Append(val)
			} else {
				nd.Insert(seg, val)
			}
		case patch.Replace:
			nd.SetAt(seg, val)
		case patch.Remove:
			nd.Splice(seg, 1)
		}
	default:
		return fmt.Errorf("%w: segment %v", ErrPatchPath, seg)
	}
	return nil
}
