package testsupport

import (
	"path/filepath"
	"testing"

	"streetmatch/internal/config"
)

// PostalCodeStreets is the fixture corpus keyed by postal code file name.
var PostalCodeStreets = map[string][]string{
	"1201": {"quai du seujet 36", "rue de coutance 5", "boulevard james-fazy 10", "place de cornavin 7", "rue de berne 12"},
	"1000": {"route de la claie-aux-moines 21", "chemin de la planche-aux-oies 9a", "avenue de la gare 3", "rue du bourg 8"},
	"9650": {"haggenstrasse 5", "dorfstrasse 4c", "wattwilerstrasse 12"},
	"1753": {"impasse de pra d'amont 2", "route de villars-sur-glâne 2", "chemin des fleurs 6"},
	"1945": {"route de rière-ville 10", "rue du village 1"},
}

// PlaceStreets is the fixture corpus keyed by place file token.
var PlaceStreets = map[string][]string{
	"bern":              {"aarstrasse 76", "bundesplatz 3", "kramgasse 49", "marktgasse 12"},
	"bercher":           {"chemin de saint-cierges 3", "route de lausanne 2", "rue du collège 4"},
	"siders%2Csierre":   {"avenue général-guisan 15", "rue du bourg 20"},
	"la_chaux-de-fonds": {"avenue léopold-robert 50", "rue de la serre 12"},
}

// PlaceNames is the canonical places list.
var PlaceNames = []string{"bern", "bercher", "bulle", "genève", "siders/sierre", "la chaux-de-fonds"}

// WriteSwissCorpus writes the fixture corpus to the directories named by cfg.
func WriteSwissCorpus(t testing.TB, cfg *config.Config) {
	t.Helper()

	for code, streets := range PostalCodeStreets {
		WriteLines(t, filepath.Join(cfg.Corpus.PostalCodeDir, code), streets...)
	}
	for token, streets := range PlaceStreets {
		WriteLines(t, filepath.Join(cfg.Corpus.PlaceDir, token), streets...)
	}
	WriteLines(t, cfg.Corpus.PlacesFile, PlaceNames...)
}
