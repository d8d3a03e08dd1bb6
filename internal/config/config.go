package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Unreadable-file policies for the compile step.
const (
	UnreadableAnnotate = "annotate" // embed a warning section in the payload
	UnreadableSkip     = "skip"     // omit the file and report it
	UnreadableAbort    = "abort"    // fail the whole compile
)

// Config represents the application configuration structure.
// It defines compile options, tokenizer settings, scan and reference-search
// defaults, watch mode parameters, and UI settings.
type Config struct {
	Compile struct {
		Annotate        bool   `yaml:"annotate"`          // Prefix each file with a header line
		Separator       string `yaml:"separator"`         // Join string between file sections
		StripEmptyLines bool   `yaml:"strip_empty_lines"` // Drop empty/whitespace-only lines
		OnUnreadable    string `yaml:"on_unreadable"`     // annotate, skip, or abort
		MaxTokens       int    `yaml:"max_tokens"`        // Chunk size in tokens (0 = no chunking)
	} `yaml:"compile"`
	Tokenizer struct {
		Model string `yaml:"model"` // Model name used to pick the tiktoken encoding
	} `yaml:"tokenizer"`
	Scan struct {
		DefaultExtension string `yaml:"default_extension"` // Extension used when none is given
	} `yaml:"scan"`
	Refs struct {
		ContextBefore int    `yaml:"context_before"` // Lines of context before a match
		ContextAfter  int    `yaml:"context_after"`  // Lines of context after a match
		Extension     string `yaml:"extension"`      // File extension searched for references
	} `yaml:"refs"`
	WatchMode struct {
		Enabled        bool `yaml:"enabled"`         // Recopy automatically when staged files change
		DebounceMillis int  `yaml:"debounce_millis"` // Quiet period before recompiling
	} `yaml:"watch_mode"`
	Settings struct {
		Theme               string `yaml:"theme"` // dark or light
		EnableNotifications bool   `yaml:"enable_notifications"`
	} `yaml:"settings"`

	// path the config was loaded from, used by Save
	path string
}

// LoadConfig loads configuration from the default location
// (~/.config/clipboarder/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "clipboarder", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()
	cfg.path = path

	// Try to read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Booleans need a presence check: a plain bool can't distinguish an
	// explicit false from an omitted key, and annotate defaults to true
	var flags struct {
		Compile struct {
			Annotate        *bool `yaml:"annotate"`
			StripEmptyLines *bool `yaml:"strip_empty_lines"`
		} `yaml:"compile"`
		WatchMode struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"watch_mode"`
		Settings struct {
			EnableNotifications *bool `yaml:"enable_notifications"`
		} `yaml:"settings"`
	}
	if err := yaml.Unmarshal(data, &flags); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if flags.Compile.Annotate != nil {
		cfg.Compile.Annotate = *flags.Compile.Annotate
	}
	if tempCfg.Compile.Separator != "" {
		cfg.Compile.Separator = tempCfg.Compile.Separator
	}
	if flags.Compile.StripEmptyLines != nil {
		cfg.Compile.StripEmptyLines = *flags.Compile.StripEmptyLines
	}
	if tempCfg.Compile.OnUnreadable != "" {
		cfg.Compile.OnUnreadable = tempCfg.Compile.OnUnreadable
	}
	if tempCfg.Compile.MaxTokens > 0 {
		cfg.Compile.MaxTokens = tempCfg.Compile.MaxTokens
	}

	if tempCfg.Tokenizer.Model != "" {
		cfg.Tokenizer.Model = tempCfg.Tokenizer.Model
	}
	if tempCfg.Scan.DefaultExtension != "" {
		cfg.Scan.DefaultExtension = tempCfg.Scan.DefaultExtension
	}

	if tempCfg.Refs.ContextBefore > 0 {
		cfg.Refs.ContextBefore = tempCfg.Refs.ContextBefore
	}
	if tempCfg.Refs.ContextAfter > 0 {
		cfg.Refs.ContextAfter = tempCfg.Refs.ContextAfter
	}
	if tempCfg.Refs.Extension != "" {
		cfg.Refs.Extension = tempCfg.Refs.Extension
	}

	if flags.WatchMode.Enabled != nil {
		cfg.WatchMode.Enabled = *flags.WatchMode.Enabled
	}
	if tempCfg.WatchMode.DebounceMillis > 0 {
		cfg.WatchMode.DebounceMillis = tempCfg.WatchMode.DebounceMillis
	}

	if tempCfg.Settings.Theme != "" {
		cfg.Settings.Theme = tempCfg.Settings.Theme
	}
	if flags.Settings.EnableNotifications != nil {
		cfg.Settings.EnableNotifications = *flags.Settings.EnableNotifications
	}

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	// Compile defaults match the classic annotated output:
	// "# ===== File: name =====" headers joined by blank lines.
	cfg.Compile.Annotate = true
	cfg.Compile.Separator = "\n\n"
	cfg.Compile.StripEmptyLines = false
	cfg.Compile.OnUnreadable = UnreadableAnnotate
	cfg.Compile.MaxTokens = 0 // No chunking by default

	cfg.Tokenizer.Model = "gpt-4o"

	cfg.Scan.DefaultExtension = ".go"

	cfg.Refs.ContextBefore = 3
	cfg.Refs.ContextAfter = 3
	cfg.Refs.Extension = ".cs"

	cfg.WatchMode.Enabled = false
	cfg.WatchMode.DebounceMillis = 500

	cfg.Settings.Theme = "dark"
	cfg.Settings.EnableNotifications = false

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal via a node tree so the separator can be forced into
	// double-quoted style: the block-scalar form the emitter picks for
	// strings with newlines drops a leading newline on reload.
	var node yaml.Node
	if err := node.Encode(cfg); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if sep := findMapValue(&node, "compile", "separator"); sep != nil {
		sep.Style = yaml.DoubleQuotedStyle
	}

	data, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write the data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// findMapValue walks nested mapping nodes by key and returns the value
// node at the end of the path, or nil if any key is absent.
func findMapValue(node *yaml.Node, keys ...string) *yaml.Node {
	cur := node
	for _, key := range keys {
		if cur.Kind != yaml.MappingNode {
			return nil
		}
		var next *yaml.Node
		for i := 0; i+1 < len(cur.Content); i += 2 {
			if cur.Content[i].Value == key {
				next = cur.Content[i+1]
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// Save writes the configuration back to the file it was loaded from,
// or to the default location when it was built from defaults.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "clipboarder", "config.yaml")
	}
	return SaveConfig(c, path)
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	// Validate unreadable-file policy
	validPolicies := map[string]bool{
		UnreadableAnnotate: true,
		UnreadableSkip:     true,
		UnreadableAbort:    true,
	}
	if !validPolicies[c.Compile.OnUnreadable] {
		return fmt.Errorf("invalid on_unreadable setting: %s", c.Compile.OnUnreadable)
	}

	if c.Compile.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must be >= 0")
	}

	if c.Refs.ContextBefore < 0 || c.Refs.ContextAfter < 0 {
		return fmt.Errorf("refs context lines must be >= 0")
	}

	if c.WatchMode.DebounceMillis < 0 {
		return fmt.Errorf("watch debounce must be >= 0 milliseconds")
	}

	validThemes := map[string]bool{"dark": true, "light": true}
	if !validThemes[c.Settings.Theme] {
		return fmt.Errorf("invalid theme: %s", c.Settings.Theme)
	}

	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Compile.Annotate = false
	cfg.Compile.Separator = "\n---\n"
	cfg.Compile.OnUnreadable = UnreadableAbort
	cfg.WatchMode.DebounceMillis = 50
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}
