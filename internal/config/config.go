package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for folio, stored in ~/.folio/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// DataDir is where collection data lives. Empty = <base>/data.
	DataDir string `json:"data_dir"`
	// Storage selects the backend: "json" (one file per collection) or
	// "sqlite" (a single folio.db).
	Storage string `json:"storage"`
	// SnippetLength is the preview length for list and dashboard views.
	SnippetLength int `json:"snippet_length"`
}

// Storage backend names.
const (
	StorageJSON   = "json"
	StorageSQLite = "sqlite"
)

// DefaultSnippetLength is the preview length used when none is configured.
const DefaultSnippetLength = 80

// BaseDir returns the root folio directory: $FOLIO_HOME if set, else ~/.folio.
func BaseDir() (string, error) {
	if dir := os.Getenv("FOLIO_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".folio"), nil
}

// defaultConfig returns a Config pre-filled for the given base directory.
func defaultConfig(base string) Config {
	return Config{
		DataDir:       filepath.Join(base, "data"),
		Storage:       StorageJSON,
		SnippetLength: DefaultSnippetLength,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// folio configuration – config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise folio behaviour.
{
  // Directory holding the collection data. Empty = "data" next to this file.
  "data_dir": "",

  // Storage backend.
  // • "json"   – one human-readable JSON file per collection (default)
  // • "sqlite" – a single folio.db database
  "storage": "json",

  // Number of characters shown in list and dashboard previews.
  "snippet_length": 80
}
`

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads <base>/config.json, creating it with annotated defaults on first
// run. Lines starting with // are treated as comments and stripped before
// JSON parsing.
func Load() (Config, error) {
	base, err := BaseDir()
	if err != nil {
		return Config{Storage: StorageJSON, SnippetLength: DefaultSnippetLength}, err
	}
	path := filepath.Join(base, "config.json")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(base), nil
	}
	if err != nil {
		return defaultConfig(base), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(base), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(base, "data")
	}
	if cfg.Storage == "" {
		cfg.Storage = StorageJSON
	}
	if cfg.SnippetLength <= 0 {
		cfg.SnippetLength = DefaultSnippetLength
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
