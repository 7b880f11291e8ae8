package street

import (
	"fmt"
	"strconv"
	"strings"
)

// HintKind selects the corpus a resolution searches.
type HintKind int

const (
	// AnyPostalCode searches the whole postal-code directory.
	AnyPostalCode HintKind = iota
	// PostalCode narrows the search to one postal-code file.
	PostalCode
	// Place narrows the search to the file of a fuzzily resolved place.
	Place
	// AnyPlace searches the whole place directory.
	AnyPlace
)

// Hint optionally scopes a resolution. The zero value is AnyPostalCode.
type Hint struct {
	Kind       HintKind
	PostalCode int
	Place      string
}

func PostalCodeHint(code int) Hint { return Hint{Kind: PostalCode, PostalCode: code} }

func PlaceHint(name string) Hint { return Hint{Kind: Place, Place: name} }

func AnyPlaceHint() Hint { return Hint{Kind: AnyPlace} }

// ParsePostalCodeHint builds a postal-code hint from user input. Blank input
// yields the zero Hint.
func ParsePostalCodeHint(value string) (Hint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Hint{}, nil
	}
	code, err := strconv.Atoi(value)
	if err != nil || code <= 0 {
		return Hint{}, fmt.Errorf("postal code %q is not a positive number", value)
	}
	return PostalCodeHint(code), nil
}

// placeScoped reports whether the hint targets the place corpus.
func (h Hint) placeScoped() bool {
	return h.Kind == Place || h.Kind == AnyPlace
}

func (h Hint) String() string {
	switch h.Kind {
	case PostalCode:
		return "postal code " + strconv.Itoa(h.PostalCode)
	case Place:
		return "place " + strconv.Quote(h.Place)
	case AnyPlace:
		return "any place"
	default:
		return "any postal code"
	}
}
