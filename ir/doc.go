// Package ir provides the in-memory representation of pyvoc documents.
//
// # Overview
//
// A pyvoc document is a three level ordered mapping:
//
//	zone name -> category name -> key -> value
//
// [Doc] holds the zones in declaration order, each [Zone] holds its
// categories and each [Category] holds its [Node] key/value pairs. Names
// are unique within their immediate parent; the same category name may
// appear under different zones.
//
// Values are strings. Numbers are carried as their decimal text.
//
// # Lookups
//
// [Doc.Lookup], [Doc.Resolves] and [Doc.DepthOf] address the model with a
// zone, category and key. DepthOf reports how many of the levels resolve by
// nested lookup, which is what callers use to name the missing level.
//
// # Related Packages
//
//   - github.com/signadot/pyvoc/parse - Parse text to a Doc
//   - github.com/signadot/pyvoc/encode - Encode a Doc to text
package ir
