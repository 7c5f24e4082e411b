// Package token provides the pyvoc scanner.
//
// [Tokenize] makes a single left to right pass over a document. A '<'
// starts capturing, every following character other than '<' is captured,
// and the next '>' or '/' closes the captured text as one [Token]. Closing
// markers such as "</zone>" capture nothing and so produce no token.
//
// The scanner never fails: input that does not follow the grammar still
// yields tokens, which the parser places under whatever zone and category
// are current.
package token
