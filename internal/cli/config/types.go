// Package config provides configuration management for the corpusload CLI.
//
// Configuration is layered with koanf: defaults, then an optional
// corpusload.yaml, then CORPUSLOAD_* environment variables, then CLI flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	DataDir      string   `koanf:"data_dir"`
	Dataset      string   `koanf:"dataset"`
	Languages    []string `koanf:"languages"`
	Namespace    string   `koanf:"namespace"`
	MaxFiles     int      `koanf:"max_files"`
	AssumeYes    bool     `koanf:"assume_yes"`
	Verbose      bool     `koanf:"verbose"`
	OutputFormat string   `koanf:"output"`

	// ProjectRoot is the directory the config file was found in (or the
	// CWD). Relative paths resolve against it.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultDataDir   = "data"
	DefaultDataset   = "wikimedia-foundation/wikipedia-structured-contents"
	DefaultNamespace = "wiki_namespace_0"
	DefaultMaxFiles  = 1
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// DefaultLanguages are the language codes loaded when none are configured.
var DefaultLanguages = []string{"en", "fr"}

// LangDirs returns the expected data subdirectory name for each configured
// language: the language code suffixed with the namespace tag.
func (c *Config) LangDirs() []string {
	dirs := make([]string, 0, len(c.Languages))
	for _, lang := range c.Languages {
		dirs = append(dirs, lang+c.Namespace)
	}
	return dirs
}
