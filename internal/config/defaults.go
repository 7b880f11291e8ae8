package config

const (
	defaultConfigPath  = "~/.config/streetmatch/config.toml"
	projectConfigName  = "streetmatch.toml"
	defaultPostalDir   = "~/.local/share/streetmatch/plzs"
	defaultPlaceDir    = "~/.local/share/streetmatch/places"
	defaultPlacesFile  = "~/.local/share/streetmatch/places.txt"
	defaultAlgorithm   = "jaro"
	defaultSensitivity = 0.6
	// A single scope file is small, so it gets a stricter threshold than the
	// whole corpus.
	defaultFileSensitivity  = 0.87
	defaultKeep             = 50
	defaultPlaceAlgorithm   = "jaro_winkler"
	defaultPlaceSensitivity = 0.7
	defaultPlaceCacheTTL    = 600
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Corpus: Corpus{
			PostalCodeDir: defaultPostalDir,
			PlaceDir:      defaultPlaceDir,
			PlacesFile:    defaultPlacesFile,
		},
		Matching: Matching{
			Algorithm:         defaultAlgorithm,
			Sensitivity:       defaultSensitivity,
			FileSensitivity:   defaultFileSensitivity,
			Keep:              defaultKeep,
			FirstLetterFilter: true,
		},
		Places: Places{
			Algorithm:       defaultPlaceAlgorithm,
			Sensitivity:     defaultPlaceSensitivity,
			CacheTTLSeconds: defaultPlaceCacheTTL,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
