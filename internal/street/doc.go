// Package street resolves free-form Swiss street addresses against the
// postal-code and place corpora.
//
// Normalize canonicalizes a raw street string: it moves a leading house
// number to the end, drops trailing multi-unit suffixes such as ", 5, 6" and
// compacts the result for scoring. A Resolver first searches the single file
// selected by a Hint with a strict threshold and otherwise falls back to a
// parallel search of the whole directory, first restricted to entries that
// share the query's first letter and then unrestricted.
//
// Place-name hints are themselves fuzzy: PlaceResolver maps user input such
// as "Berne" onto the canonical places list before the file is chosen.
package street
