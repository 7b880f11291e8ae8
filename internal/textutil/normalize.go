package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Punctuation lists the characters removed from cleaned text. Space is part
// of the set: cleaned forms are compacted for scoring.
const Punctuation = "_\\(),\".;:'-/+– "

var punctuationRemover = strings.NewReplacer(punctuationPairs()...)

func punctuationPairs() []string {
	pairs := make([]string, 0, 2*utf8.RuneCountInString(Punctuation))
	for _, r := range Punctuation {
		pairs = append(pairs, string(r), "")
	}
	return pairs
}

// Text pairs a raw string with its comparison form.
type Text struct {
	Original string `json:"original"`
	Cleaned  string `json:"cleaned"`
}

// FirstRune returns the leading character of the cleaned form.
func (t Text) FirstRune() (rune, bool) {
	return FirstRune(t.Cleaned)
}

// Normalizer turns raw strings into cleaned comparison forms. The zero value
// lowercases, applies NFC and strips Punctuation.
type Normalizer struct {
	// FoldAccents removes combining marks so "glâne" and "glane" compare equal.
	FoldAccents bool
}

// Text builds a Text for raw using the normalizer settings.
func (n Normalizer) Text(raw string) Text {
	return Text{Original: raw, Cleaned: n.Clean(raw)}
}

// Clean returns the comparison form of raw.
func (n Normalizer) Clean(raw string) string {
	return StripPunctuation(n.Fold(raw))
}

// Fold lowercases raw, normalizes its Unicode representation and turns
// every Unicode space (tab, no-break space, ...) into an ASCII space.
// Punctuation is left alone.
func (n Normalizer) Fold(raw string) string {
	s := strings.Map(asciiSpace, strings.ToLower(norm.NFC.String(raw)))
	if !n.FoldAccents {
		return s
	}
	// The chain is stateful, so each call builds its own.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return folded
}

func asciiSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return ' '
	}
	return r
}

// NewText builds a Text with the default Normalizer.
func NewText(raw string) Text {
	return Normalizer{}.Text(raw)
}

// StripPunctuation removes every character of the Punctuation set.
func StripPunctuation(s string) string {
	return punctuationRemover.Replace(s)
}

// FirstRune returns the first character of s.
func FirstRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}
