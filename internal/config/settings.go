package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tklug26/modis-fetch/internal/fetch"
	"github.com/tklug26/modis-fetch/internal/modis"
)

// Settings keys in the environment
const (
	EnvProduct     = "MODIS_PRODUCT"
	EnvYear        = "MODIS_YEAR"
	EnvStartDay    = "MODIS_START_DAY"
	EnvEndDay      = "MODIS_END_DAY"
	EnvHGrid       = "MODIS_H_GRID"
	EnvVGrid       = "MODIS_V_GRID"
	EnvCounterpart = "MODIS_COUNTERPART"
	EnvHost        = "MODIS_HOST"
	EnvCollection  = "MODIS_COLLECTION"
	EnvOutputDir   = "MODIS_OUTPUT_DIR"
	EnvDialTimeout = "MODIS_DIAL_TIMEOUT"
)

// Default values
const (
	DefaultConfigFile = "modis-fetch.yaml"
	DefaultOutputDir  = "."
)

// Settings holds the full configuration surface: everything the original
// tool hard-coded is a field here. Precedence is defaults, then the YAML
// file, then MODIS_* environment variables; command-line flags are applied
// on top by the caller.
type Settings struct {
	Product     string        `yaml:"product"`
	Year        int           `yaml:"year"`
	StartDay    int           `yaml:"startDay"`
	EndDay      int           `yaml:"endDay"`
	HGrid       int           `yaml:"hGrid"`
	VGrid       int           `yaml:"vGrid"`
	Counterpart bool          `yaml:"counterpart"`
	Host        string        `yaml:"host"`
	Collection  string        `yaml:"collection"`
	OutputDir   string        `yaml:"outputDir"`
	DialTimeout time.Duration `yaml:"dialTimeout"`
}

// Load builds Settings from defaults, an optional YAML file and the
// environment. A .env file in the working directory is loaded first when
// present. path may be empty, in which case modis-fetch.yaml is used if it
// exists.
func Load(path string) (*Settings, error) {
	_ = godotenv.Load()

	s := defaultSettings()

	if path != "" {
		if err := s.hydrateFromFile(path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(DefaultConfigFile); err == nil {
		if err := s.hydrateFromFile(DefaultConfigFile); err != nil {
			return nil, err
		}
	}

	s.applyEnv()
	return s, nil
}

func defaultSettings() *Settings {
	return &Settings{
		StartDay:    1,
		EndDay:      1,
		Host:        modis.DefaultHost,
		Collection:  modis.DefaultCollection,
		OutputDir:   DefaultOutputDir,
		DialTimeout: fetch.DefaultDialTimeout,
	}
}

func (s *Settings) hydrateFromFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, s); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (s *Settings) applyEnv() {
	setString(EnvProduct, &s.Product)
	setInt(EnvYear, &s.Year)
	setInt(EnvStartDay, &s.StartDay)
	setInt(EnvEndDay, &s.EndDay)
	setInt(EnvHGrid, &s.HGrid)
	setInt(EnvVGrid, &s.VGrid)
	setBool(EnvCounterpart, &s.Counterpart)
	setString(EnvHost, &s.Host)
	setString(EnvCollection, &s.Collection)
	setString(EnvOutputDir, &s.OutputDir)
	setDuration(EnvDialTimeout, &s.DialTimeout)
}

// Validate checks the CLI-boundary requirements. Grid and day values are
// deliberately not range-checked beyond ordering: the resolver is total and
// the archive answers malformed paths with an ordinary failure.
func (s *Settings) Validate() error {
	if s.Product == "" {
		return fmt.Errorf("product is required")
	}
	if s.Year <= 0 {
		return fmt.Errorf("year is required")
	}
	if s.StartDay > s.EndDay {
		return fmt.Errorf("start day %d is after end day %d", s.StartDay, s.EndDay)
	}
	return nil
}

func setString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
