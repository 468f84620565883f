// Package schema provides the HED vocabulary model: an immutable tree of
// terms with typed attributes, plus the unit class, unit modifier, value
// class and attribute tables that give placeholder values their meaning.
//
// # Building a schema
//
// A schema is built from a pre-parsed structural representation, Raw.
// Readers for the on-disk formats live outside this package (see
// schemaio for the structured YAML/JSON form).
//
//	raw, _ := schemaio.ReadFile("HED_8.3.0.yaml")
//	s, err := schema.Load(raw)
//
// Load checks that every path hangs off a declared parent, that table
// entries are not redeclared with a different meaning, and that unit and
// modifier conversion factors are positive and finite. Errors wrap ErrLoad.
//
// # Terms and forms
//
// Each Node carries its declared Name and its Long form (the slash joined
// ancestor chain). Names are unique along one chain but not globally, so
// the short form of a term is the shortest chain suffix that identifies it
// uniquely. Placeholder children are nodes named "#".
//
// # Libraries
//
// MergeLibrary combines a library schema with its standard partner into a
// new Schema. Library roots declared rooted are grafted under the base
// term of the same name; any other collision is an ErrConflict. Group
// holds a primary schema plus prefixed partners for tags written as
// prefix:Tag.
package schema
