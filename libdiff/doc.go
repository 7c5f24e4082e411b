// Package libdiff computes, applies and reverses differences between
// pyvoc documents.
//
// A diff is a list of [Change] values. Removed zones and categories are
// listed bottom up, their keys first; added ones top down, so that a
// diff applies in order and its reverse does too.
package libdiff
