// Package ir provides the tree representation of a HED annotation string.
//
// # Overview
//
// An annotation string is a comma separated list of tags and
// parenthesized groups, nested to any depth. Parsing produces a root
// *Group (Parens is false) whose Children are *Tag and *Group nodes in
// source order. Every node records the byte span of its text in the
// string, and the root keeps the string itself in Source.
//
// The tree is strictly owned: each node has exactly one parent and is
// referenced only from that parent's Children. Edits go through the
// Group methods (ReplaceTag, RemoveTag, RemoveGroups, Append) and copies
// are deep (Clone), so a node is never shared between two trees.
//
// # Forms
//
// Form renders a tree as Original, Short or Long text:
//
//	g, _ := parse.Parse("Red, (Item/Object/Ball, Blue)")
//	g.Form(ir.Original) // "Red, (Item/Object/Ball, Blue)"
//
// Original reproduces the source byte for byte for an unmodified tree,
// reusing the source separators wherever the neighbouring nodes still
// carry their source spans. Short and Long need resolved tags and join
// with a bare comma.
//
// # Resolution
//
// A Tag is resolved when Entry points at its schema node. The resolve
// package fills Entry, Prefix, Value and Extension and records the short
// and long forms with SetForms.
package ir
