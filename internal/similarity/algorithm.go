package similarity

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Algorithm identifies a string-similarity scoring function.
type Algorithm int

const (
	Levenshtein Algorithm = iota
	DamerauLevenshtein
	Jaro
	JaroWinkler
	SorensenDice
	OptimalStringAlignment
)

// Scorer compares two strings and returns a similarity in [0,1].
type Scorer func(a, b string) float64

var algorithmNames = map[Algorithm]string{
	Levenshtein:            "levenshtein",
	DamerauLevenshtein:     "damerau_levenshtein",
	Jaro:                   "jaro",
	JaroWinkler:            "jaro_winkler",
	SorensenDice:           "sorensen_dice",
	OptimalStringAlignment: "osa",
}

// Algorithms lists every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Levenshtein, DamerauLevenshtein, Jaro, JaroWinkler, SorensenDice, OptimalStringAlignment}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm resolves a configuration name. Hyphens, spaces and case are
// ignored so "Jaro-Winkler" and "jaro_winkler" are equivalent.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	switch key {
	case "levenshtein":
		return Levenshtein, nil
	case "damerau_levenshtein", "damerau":
		return DamerauLevenshtein, nil
	case "jaro":
		return Jaro, nil
	case "jaro_winkler":
		return JaroWinkler, nil
	case "sorensen_dice", "dice":
		return SorensenDice, nil
	case "osa", "optimal_string_alignment":
		return OptimalStringAlignment, nil
	}
	return 0, fmt.Errorf("unknown similarity algorithm %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if _, ok := algorithmNames[a]; !ok {
		return nil, fmt.Errorf("unknown similarity algorithm %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Scorer returns the scoring function for the algorithm. Unknown values fall
// back to an exact-match scorer so a corrupted value never panics.
func (a Algorithm) Scorer() Scorer {
	switch a {
	case Levenshtein:
		return distanceScorer(edlib.LevenshteinDistance)
	case DamerauLevenshtein:
		return distanceScorer(edlib.DamerauLevenshteinDistance)
	case OptimalStringAlignment:
		return distanceScorer(edlib.OSADamerauLevenshteinDistance)
	case Jaro:
		return guarded(func(x, y string) float64 {
			return float64(edlib.JaroSimilarity(x, y))
		})
	case JaroWinkler:
		return guarded(func(x, y string) float64 {
			return float64(edlib.JaroWinklerSimilarity(x, y))
		})
	case SorensenDice:
		return guarded(func(x, y string) float64 {
			return float64(edlib.SorensenDiceCoefficient(x, y, 2))
		})
	default:
		return guarded(func(string, string) float64 { return 0 })
	}
}

// Score compares a and b with the given algorithm.
func Score(algo Algorithm, a, b string) float64 {
	return algo.Scorer()(a, b)
}

func distanceScorer(distance func(a, b string) int) Scorer {
	return guarded(func(a, b string) float64 {
		longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
		return 1 - float64(distance(a, b))/float64(longest)
	})
}

// guarded settles the identical and empty cases before delegating, and
// clamps the result into [0,1].
func guarded(score Scorer) Scorer {
	return func(a, b string) float64 {
		if a == b {
			return 1
		}
		if a == "" || b == "" {
			return 0
		}
		return clamp(score(a, b))
	}
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
