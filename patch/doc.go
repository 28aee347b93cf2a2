// Package patch defines the operation model describing the edits a draft
// session applied.
//
// An Op is one of add, replace or remove, addressed by a path of record
// keys and sequence indices. Ops marshal to the RFC 6902 JSON Patch
// shape, with paths rendered as JSON pointers, so generated patches can
// be stored, transported and replayed by standard tooling.
//
// Patches are produced by the draft package during finalization and
// replayed through the craft facade (see craft.ApplyPatches).
package patch
