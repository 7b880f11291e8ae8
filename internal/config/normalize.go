package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCorpus(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizePlaces()
	return c.normalizeLogging()
}

func (c *Config) normalizeCorpus() error {
	// STREETMATCH_DATA_DIR relocates any corpus path still at its default.
	if base, ok := os.LookupEnv("STREETMATCH_DATA_DIR"); ok && strings.TrimSpace(base) != "" {
		base = strings.TrimSpace(base)
		if c.Corpus.PostalCodeDir == defaultPostalDir {
			c.Corpus.PostalCodeDir = filepath.Join(base, "plzs")
		}
		if c.Corpus.PlaceDir == defaultPlaceDir {
			c.Corpus.PlaceDir = filepath.Join(base, "places")
		}
		if c.Corpus.PlacesFile == defaultPlacesFile {
			c.Corpus.PlacesFile = filepath.Join(base, "places.txt")
		}
	}
	var err error
	if c.Corpus.PostalCodeDir, err = expandPath(strings.TrimSpace(c.Corpus.PostalCodeDir)); err != nil {
		return fmt.Errorf("corpus.postal_code_dir: %w", err)
	}
	if c.Corpus.PlaceDir, err = expandPath(strings.TrimSpace(c.Corpus.PlaceDir)); err != nil {
		return fmt.Errorf("corpus.place_dir: %w", err)
	}
	if c.Corpus.PlacesFile, err = expandPath(strings.TrimSpace(c.Corpus.PlacesFile)); err != nil {
		return fmt.Errorf("corpus.places_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeMatching() {
	c.Matching.Algorithm = strings.ToLower(strings.TrimSpace(c.Matching.Algorithm))
	if c.Matching.Algorithm == "" {
		c.Matching.Algorithm = defaultAlgorithm
	}
}

func (c *Config) normalizePlaces() {
	c.Places.Algorithm = strings.ToLower(strings.TrimSpace(c.Places.Algorithm))
	if c.Places.Algorithm == "" {
		c.Places.Algorithm = defaultPlaceAlgorithm
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
