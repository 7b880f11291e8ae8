package street_test

import (
	"errors"
	"testing"

	"streetmatch/internal/street"
	"streetmatch/internal/textutil"
)

func TestNormalizeCleansStreets(t *testing.T) {
	tests := map[string]string{
		"   Bernstrasse 7   ":              "bernstrasse7",
		"   a4 Bernstrasse   ":             "bernstrassea4",
		"4 Bernstrasse":                    "bernstrasse4",
		"4, Bernstrasse":                   "bernstrasse4",
		"Bernstrasse 4a, 5, 6":             "bernstrasse4a",
		"Bernstrasse 4 A fasdfs":           "bernstrasse4a",
		"Bernstrasse 7 A":                  "bernstrasse7a",
		"Quai du Seujet 36-38":             "quaiduseujet36",
		"Haggenstrasse 5/7":                "haggenstrasse5",
		"Bahnhofstrasse 1 + 3":             "bahnhofstrasse1",
		"Dorfstrasse 4c – 6":               "dorfstrasse4c",
		"Rue du Bourg 8.2":                 "ruedubourg8",
		"Chemin de la Planche-aux-Oies 9a": "chemindelaplancheauxoies9a",
		"Route de Rie\u0300re-Ville 10":    "routederi\u00e8reville10",
		"4\u00a0Bernstrasse":               "bernstrasse4",
		"Bernstrasse\u00a04a, 5, 6":        "bernstrasse4a",
		"Bernstrasse 4a\u00a05 6":          "bernstrasse4a",
		"\u00e94\u2009Rue du Lac":          "ruedulac\u00e94",
		"Bernstrasse":                      "bernstrasse",
		"":                                 "",
	}
	for raw, want := range tests {
		got := street.Normalize(raw)
		if got.Cleaned != want {
			t.Fatalf("Normalize(%q): got %q want %q", raw, got.Cleaned, want)
		}
		if got.Original != raw {
			t.Fatalf("Normalize(%q) changed the original to %q", raw, got.Original)
		}
	}
}

func TestNormalizerFoldsAccents(t *testing.T) {
	n := street.Normalizer{Text: textutil.Normalizer{FoldAccents: true}}
	if got := n.Clean("Route de Villars-sur-Glâne 2"); got != "routedevillarssurglane2" {
		t.Fatalf("unexpected cleaned form: got %q want %q", got, "routedevillarssurglane2")
	}
}

func TestNormalizeIsIdempotentOnCleanedForm(t *testing.T) {
	for _, raw := range []string{"Bernstrasse 4a, 5, 6", "4 Bernstrasse", "Quai du Seujet 36-38"} {
		once := street.Normalize(raw).Cleaned
		if twice := street.Normalize(once).Cleaned; twice != once {
			t.Fatalf("cleaning %q twice changed it: %q then %q", raw, once, twice)
		}
	}
}

func TestRequireStreetNumber(t *testing.T) {
	if !street.HasStreetNumber("Bernstrasse 7") {
		t.Fatal("expected a digit to be detected")
	}
	if street.HasStreetNumber("Bernstrasse") {
		t.Fatal("expected no digit")
	}
	err := street.RequireStreetNumber("Bernstrasse")
	if !errors.Is(err, street.ErrMissingStreetNumber) {
		t.Fatalf("expected ErrMissingStreetNumber, got %v", err)
	}
	if err := street.RequireStreetNumber("a4 Bernstrasse"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParsePostalCodeHint(t *testing.T) {
	hint, err := street.ParsePostalCodeHint(" 1201 ")
	if err != nil {
		t.Fatalf("ParsePostalCodeHint returned error: %v", err)
	}
	if hint.Kind != street.PostalCode || hint.PostalCode != 1201 {
		t.Fatalf("unexpected hint: %+v", hint)
	}
	if hint, err := street.ParsePostalCodeHint(""); err != nil || hint != (street.Hint{}) {
		t.Fatalf("expected zero hint for blank input, got %+v (%v)", hint, err)
	}
	for _, bad := range []string{"12o1", "-5", "0"} {
		if _, err := street.ParsePostalCodeHint(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
