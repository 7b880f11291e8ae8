package textutil

import (
	"strconv"
	"strings"
)

// PlaceSlashEscape replaces "/" in place-name file tokens (for example
// "siders/sierre" becomes "siders%2Csierre").
const PlaceSlashEscape = "%2C"

var placeTokenReplacer = strings.NewReplacer(
	" ", "_",
	"/", PlaceSlashEscape,
)

// PlaceToken converts a canonical place name into the file name used by the
// place corpus: lowercased, spaces become underscores and slashes are
// escaped. Returns "" for blank input.
func PlaceToken(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	return placeTokenReplacer.Replace(name)
}

var placeTokenDecoder = strings.NewReplacer(
	PlaceSlashEscape, "/",
	"_", " ",
)

// PlaceNameFromToken reverses PlaceToken. Case is not restored.
func PlaceNameFromToken(token string) string {
	return placeTokenDecoder.Replace(token)
}

// PostalCodeToken formats a postal code as its corpus file name. Returns ""
// for codes that cannot name a file.
func PostalCodeToken(code int) string {
	if code <= 0 {
		return ""
	}
	return strconv.Itoa(code)
}
