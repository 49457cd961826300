package cssusage

import (
	"log/slog"
	"path/filepath"
)

// Kind distinguishes class selectors from id selectors
type Kind string

const (
	// KindClass is a `.name` selector.
	KindClass Kind = "class"
	// KindID is a `#name` selector.
	KindID Kind = "id"
)

// Candidate is a selector name extracted from the stylesheet.
// A class and an id with the same text are distinct candidates.
type Candidate struct {
	Kind Kind   // "class"
	Name string // "foo-bar" (without the leading . or #)
}

// String renders the candidate with its CSS sigil: ".foo-bar", "#main-header"
func (c Candidate) String() string {
	if c.Kind == KindID {
		return "#" + c.Name
	}
	return "." + c.Name
}

// Config holds scan configuration
type Config struct {
	Root         string   // "." (project root, everything else is relative to it)
	Stylesheet   string   // "assets/css/admin.css"
	Output       string   // "tmp/css_usage_report.json"
	Extensions   []string // [".php", ".html", ".js", ".css", ".md", ".twig"]
	ExcludeDirs  []string // ["vendor", "node_modules", ".git"]
	Exclude      []string // Extra doublestar globs relative to Root: ["legacy/**"]
	UseGitIgnore bool     // Skip paths matched by Root/.gitignore (default: false)
	Ignore       []string // Names added to the built-in denylist
	Logger       *slog.Logger
}

// Default locations and file filters.
const (
	DefaultStylesheet = "assets/css/admin.css"
	DefaultOutput     = "tmp/css_usage_report.json"
)

// DefaultExtensions returns the file suffixes scanned for usage evidence.
func DefaultExtensions() []string {
	return []string{".php", ".html", ".js", ".css", ".md", ".twig"}
}

// DefaultExcludeDirs returns directory names that are never descended into.
func DefaultExcludeDirs() []string {
	return []string{"vendor", "node_modules", ".git"}
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Root:        ".",
		Stylesheet:  DefaultStylesheet,
		Output:      DefaultOutput,
		Extensions:  DefaultExtensions(),
		ExcludeDirs: DefaultExcludeDirs(),
	}
}

// withDefaults fills zero-valued fields from DefaultConfig
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Root == "" {
		c.Root = def.Root
	}
	if c.Stylesheet == "" {
		c.Stylesheet = def.Stylesheet
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	if len(c.Extensions) == 0 {
		c.Extensions = def.Extensions
	}
	if c.ExcludeDirs == nil {
		c.ExcludeDirs = def.ExcludeDirs
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// resolve joins a relative path onto Root
func (c Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.Root, path)
}

// Result contains everything a single analysis produced
type Result struct {
	Report         Report    // The JSON artifact
	Stats          ScanStats // File walk statistics
	StylesheetPath string    // Resolved stylesheet path
	OutputPath     string    // Resolved report path
}
