// Package similarity maps a named string-similarity algorithm to a scoring
// function returning a value in [0,1], where higher means more similar.
//
// The set of algorithms is closed: Algorithm values are parsed from
// configuration names and dispatched through an exhaustive switch, so every
// call site selects a scorer explicitly instead of relying on a package-level
// default. Edit-distance algorithms are normalized by the rune length of the
// longer input before being exposed.
package similarity
