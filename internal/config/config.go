// Package config holds app wide settings unmarshalled from Viper. Values
// come from built-in defaults, biosci.yaml, BIOSCI_* environment variables
// and bound command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LogConfig selects the slog handler.
type LogConfig struct {
	// debug, info, warn or error
	Level string `mapstructure:"level"`

	// text or json
	Format string `mapstructure:"format"`
}

// AlignConfig is the default scoring scheme for pairwise alignment.
type AlignConfig struct {
	// len(a)+len(b) above this is refused; 0 disables the check
	MaxCombinedLength int `mapstructure:"max_combined_length"`

	Match     int `mapstructure:"match"`
	Mismatch  int `mapstructure:"mismatch"`
	GapOpen   int `mapstructure:"gap_open"`
	GapExtend int `mapstructure:"gap_extend"`

	// substitution matrix name; empty uses match/mismatch
	Matrix string `mapstructure:"matrix"`
}

// TranslateConfig picks the default genetic code and adds custom ones.
type TranslateConfig struct {
	Table string `mapstructure:"table"`

	// name -> 64 amino acids in NCBI TCAG codon order
	Tables map[string]string `mapstructure:"tables"`
}

// ORFConfig is the default open reading frame search.
type ORFConfig struct {
	MinLength int    `mapstructure:"min_length"`
	Mode      string `mapstructure:"mode"`
}

// TmConfig is the default melting temperature solution.
type TmConfig struct {
	NaMM     float64 `mapstructure:"na_mm"`
	PrimerNM float64 `mapstructure:"primer_nm"`
}

// BatchConfig controls the request stream runner.
type BatchConfig struct {
	// worker goroutines; 0 means one per CPU
	Threads int `mapstructure:"threads"`
}

// SearchConfig points the remote similarity search at a QBLAST endpoint.
type SearchConfig struct {
	Endpoint     string        `mapstructure:"endpoint"`
	Program      string        `mapstructure:"program"`
	Database     string        `mapstructure:"database"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxHits      int           `mapstructure:"max_hits"`
}

// Config is the root-level settings struct, a mix of settings available in
// biosci.yaml and those available from the command line.
type Config struct {
	// text, json or jsonl
	Output string `mapstructure:"output"`
	Quiet  bool   `mapstructure:"quiet"`

	Log       LogConfig       `mapstructure:"log"`
	Align     AlignConfig     `mapstructure:"align"`
	Translate TranslateConfig `mapstructure:"translate"`
	ORF       ORFConfig       `mapstructure:"orf"`
	Tm        TmConfig        `mapstructure:"tm"`
	Batch     BatchConfig     `mapstructure:"batch"`
	Search    SearchConfig    `mapstructure:"search"`
}

// DefaultEndpoint is NCBI's public QBLAST URL API.
const DefaultEndpoint = "https://blast.ncbi.nlm.nih.gov/Blast.cgi"

var defaults = map[string]any{
	"output":                    "text",
	"quiet":                     false,
	"log.level":                 "info",
	"log.format":                "text",
	"align.max_combined_length": 10000,
	"align.match":               1,
	"align.mismatch":            -1,
	"align.gap_open":            -1,
	"align.gap_extend":          -1,
	"align.matrix":              "",
	"translate.table":           "standard",
	"translate.tables":          map[string]string{},
	"orf.min_length":            0,
	"orf.mode":                  "all",
	"tm.na_mm":                  50.0,
	"tm.primer_nm":              500.0,
	"batch.threads":             0,
	"search.endpoint":           DefaultEndpoint,
	"search.program":            "blastn",
	"search.database":           "nt",
	"search.poll_interval":      "10s",
	"search.timeout":            "10m",
	"search.max_hits":           5,
}

// New returns a Viper instance with defaults and BIOSCI_* environment
// lookup. Nested keys map to BIOSCI_LOG_LEVEL style names.
func New() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix("BIOSCI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file and unmarshals v. An explicit file must exist;
// otherwise biosci.yaml is looked up in the working directory and in
// $HOME/.config/biosci, and its absence is not an error.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("biosci")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "biosci"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the settings the core engines do not check themselves.
func (c Config) Validate() error {
	switch c.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("output must be text, json or jsonl, got %q", c.Output)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Align.MaxCombinedLength < 0 {
		return fmt.Errorf("align.max_combined_length must be >= 0")
	}
	if c.Batch.Threads < 0 {
		return fmt.Errorf("batch.threads must be >= 0")
	}
	if c.Tm.NaMM <= 0 || c.Tm.PrimerNM <= 0 {
		return fmt.Errorf("tm.na_mm and tm.primer_nm must be > 0")
	}
	if c.Search.PollInterval <= 0 || c.Search.Timeout <= 0 {
		return fmt.Errorf("search.poll_interval and search.timeout must be > 0")
	}
	if c.Search.MaxHits < 0 {
		return fmt.Errorf("search.max_hits must be >= 0")
	}
	return nil
}
