package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"streetmatch/internal/similarity"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCorpus(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validatePlaces(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCorpus() error {
	if strings.TrimSpace(c.Corpus.PostalCodeDir) == "" {
		return errors.New("corpus.postal_code_dir must be set")
	}
	if strings.TrimSpace(c.Corpus.PlaceDir) == "" {
		return errors.New("corpus.place_dir must be set")
	}
	if strings.TrimSpace(c.Corpus.PlacesFile) == "" {
		return errors.New("corpus.places_file must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if _, err := similarity.ParseAlgorithm(c.Matching.Algorithm); err != nil {
		return fmt.Errorf("matching.algorithm: %w", err)
	}
	if err := ensureSensitivityMap(map[string]float64{
		"matching.sensitivity":      c.Matching.Sensitivity,
		"matching.file_sensitivity": c.Matching.FileSensitivity,
	}); err != nil {
		return err
	}
	if c.Matching.Keep < 0 {
		return errors.New("matching.keep must be >= 0")
	}
	if c.Matching.Workers < 0 {
		return errors.New("matching.workers must be >= 0 (0 uses every CPU)")
	}
	return nil
}

func (c *Config) validatePlaces() error {
	if _, err := similarity.ParseAlgorithm(c.Places.Algorithm); err != nil {
		return fmt.Errorf("places.algorithm: %w", err)
	}
	if err := ensureSensitivityMap(map[string]float64{
		"places.sensitivity": c.Places.Sensitivity,
	}); err != nil {
		return err
	}
	if c.Places.CacheTTLSeconds < 0 {
		return errors.New("places.cache_ttl_seconds must be >= 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func ensureSensitivityMap(values map[string]float64) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if value := values[key]; value <= 0 || value > 1 {
			return fmt.Errorf("%s must be in (0, 1], got %v", key, value)
		}
	}
	return nil
}
