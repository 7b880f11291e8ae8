package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"streetmatch/internal/similarity"
)

//go:embed sample_config.toml
var sampleConfig string

// Corpus locates the street-name corpus on disk.
type Corpus struct {
	// PostalCodeDir holds one file per postal code, named after the code.
	PostalCodeDir string `toml:"postal_code_dir"`
	// PlaceDir holds one file per place, named after the place token.
	PlaceDir string `toml:"place_dir"`
	// PlacesFile lists canonical place names, one per line.
	PlacesFile string `toml:"places_file"`
}

// Matching contains the street matching parameters.
type Matching struct {
	Algorithm         string  `toml:"algorithm"`
	Sensitivity       float64 `toml:"sensitivity"`
	FileSensitivity   float64 `toml:"file_sensitivity"`
	Keep              int     `toml:"keep"`
	Workers           int     `toml:"workers"`
	FirstLetterFilter bool    `toml:"first_letter_filter"`
	FoldAccents       bool    `toml:"fold_accents"`
}

// Places contains the parameters used to resolve free-form place names.
type Places struct {
	Algorithm       string  `toml:"algorithm"`
	Sensitivity     float64 `toml:"sensitivity"`
	CacheTTLSeconds int     `toml:"cache_ttl_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config encapsulates all configuration values for streetmatch.
//
// Configuration sections:
//   - Corpus: postal-code and place directories plus the places list
//   - Matching: street algorithm, thresholds, keep count and parallelism
//   - Places: place-name resolution algorithm, threshold and cache lifetime
//   - Logging: log format, level and optional file
type Config struct {
	Corpus   Corpus   `toml:"corpus"`
	Matching Matching `toml:"matching"`
	Places   Places   `toml:"places"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// MatchingAlgorithm returns the parsed street matching algorithm. Call after Validate.
func (c *Config) MatchingAlgorithm() similarity.Algorithm {
	algo, err := similarity.ParseAlgorithm(c.Matching.Algorithm)
	if err != nil {
		return similarity.Jaro
	}
	return algo
}

// PlacesAlgorithm returns the parsed place resolution algorithm. Call after Validate.
func (c *Config) PlacesAlgorithm() similarity.Algorithm {
	algo, err := similarity.ParseAlgorithm(c.Places.Algorithm)
	if err != nil {
		return similarity.JaroWinkler
	}
	return algo
}

// PlaceCacheTTL returns how long a resolved place name stays cached.
func (c *Config) PlaceCacheTTL() time.Duration {
	return time.Duration(c.Places.CacheTTLSeconds) * time.Second
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
