package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// WildcardLanguage enables scanning for every document regardless of its
// language identifier.
const WildcardLanguage = "*"

// Config controls which documents are scanned and where stylesheets are
// discovered for indexing.
type Config struct {
	// Languages is the ordered set of language identifiers eligible for
	// scanning, or ["*"] for all documents.
	Languages []string `yaml:"languages" json:"languages"`

	// Stylesheets are the doublestar glob patterns used to enumerate
	// stylesheet files during a full re-index.
	Stylesheets []string `yaml:"stylesheets" json:"stylesheets"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel" json:"logLevel"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Languages: []string{
			"css", "scss", "less",
			"html", "vue", "svelte",
			"javascript", "javascriptreact",
			"typescript", "typescriptreact",
		},
		Stylesheets: []string{"**/*.css", "**/*.scss", "**/*.less"},
		LogLevel:    "info",
	}
}

// IsLanguageEnabled reports whether documents with the given language
// identifier should be scanned. This gates whether the scanner runs at all;
// it is an eligibility check, not a scanning rule.
func (c Config) IsLanguageEnabled(languageID string) bool {
	if slices.Contains(c.Languages, WildcardLanguage) {
		return true
	}
	return slices.Contains(c.Languages, languageID)
}

// configFileNames are tried in order inside the workspace root. YAML files
// parse with yaml.v3; the JSON variant tolerates comments and trailing
// commas via jsonc.
var configFileNames = []string{
	".colorpeek.yaml",
	".colorpeek.yml",
	".colorpeek.json",
}

// LoadConfig reads the workspace configuration from rootDir, falling back to
// DefaultConfig when no config file exists. Fields left empty in the file
// keep their defaults.
func LoadConfig(rootDir string) (Config, error) {
	cfg := DefaultConfig()

	for _, name := range configFileNames {
		path := filepath.Join(rootDir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return cfg, fmt.Errorf("failed to read %s: %w", path, err)
		}

		parsed := Config{}
		if filepath.Ext(name) == ".json" {
			err = json.Unmarshal(jsonc.ToJSON(raw), &parsed)
		} else {
			err = yaml.Unmarshal(raw, &parsed)
		}
		if err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		if len(parsed.Languages) > 0 {
			cfg.Languages = parsed.Languages
		}
		if len(parsed.Stylesheets) > 0 {
			cfg.Stylesheets = parsed.Stylesheets
		}
		if parsed.LogLevel != "" {
			cfg.LogLevel = parsed.LogLevel
		}
		return cfg, nil
	}

	return cfg, nil
}
