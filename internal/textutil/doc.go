// Package textutil provides the text primitives shared by the matchers:
// normalization of raw strings into a comparable form and filesystem tokens
// for corpus scope files.
//
// The primary use cases are:
//   - Producing a Text whose Cleaned form is lowercase, NFC-normalized and
//     free of the punctuation set, optionally with accents folded away
//   - Extracting the leading character used by the first-letter pre-filter
//   - Converting a canonical place name into the file name used by the corpus
//
// Cleaned strings are used only for similarity scoring and are never shown to
// users; the Original field always carries the input verbatim.
package textutil
