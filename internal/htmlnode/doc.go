// Package htmlnode models rendered HTML as a small tree and serializes it.
//
// A tree has two node shapes:
//
//   - Leaf: an optional tag, a text value and optional attributes. A leaf
//     without a tag is raw text and renders verbatim.
//   - Parent: a required tag, one or more children and optional attributes.
//
// Trees are built bottom-up and never mutated after construction, so a tree
// can be rendered from several goroutines at once. Values are emitted as-is:
// escaping is the caller's concern.
package htmlnode
