package cssusage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ErrInvalidPattern is returned when an exclude glob cannot be parsed.
var ErrInvalidPattern = errors.New("invalid exclude pattern")

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesScanned    int // Files read and tested against candidates
	FilesUnreadable int // Files that could not be read (no usage evidence)
	FilesSkipped    int // Files excluded by glob or gitignore rules
	DirsPruned      int // Directories never descended into
}

// ScanOptions controls which files the usage scanner visits
type ScanOptions struct {
	Extensions   []string // Case-insensitive suffixes: ".html"
	ExcludeDirs  []string // Directory names pruned before descent: "node_modules"
	Exclude      []string // Doublestar globs relative to root
	UseGitIgnore bool     // Honour root/.gitignore
	SkipFiles    []string // Paths never counted as evidence (the stylesheet itself)
}

// Usage maps every candidate to whether any scanned file references it.
// Flags only ever flip from false to true.
type Usage map[Candidate]bool

// newUsage initialises every candidate as unused
func newUsage(candidates []Candidate) Usage {
	usage := make(Usage, len(candidates))
	for _, c := range candidates {
		usage[c] = false
	}
	return usage
}

// markUsed flips a candidate's flag; it never resets one
func (u Usage) markUsed(c Candidate) {
	u[c] = true
}

// usageMatcher tests file text for references to one candidate
type usageMatcher struct {
	candidate Candidate
	attr      *regexp.Regexp // class="... name ..." or id="... name ..."
	word      *regexp.Regexp // name as a whole word anywhere
}

func newUsageMatcher(c Candidate) usageMatcher {
	name := regexp.QuoteMeta(c.Name)
	attribute := "class"
	if c.Kind == KindID {
		attribute = "id"
	}

	return usageMatcher{
		candidate: c,
		attr:      regexp.MustCompile(attribute + `="[^"]*\b` + name + `\b`),
		word:      regexp.MustCompile(`\b` + name + `\b`),
	}
}

// matches reports whether text references the candidate.
// The attribute form is implied by the bare word form; both are kept.
func (m usageMatcher) matches(text string) bool {
	return m.attr.MatchString(text) || m.word.MatchString(text)
}

// pathFilter decides which directories are pruned and which files are read
type pathFilter struct {
	root        string
	extensions  []string
	excludeDirs map[string]bool
	globs       []string
	gitignore   *ignore.GitIgnore
	skip        map[string]bool
}

func newPathFilter(root string, opts ScanOptions) (*pathFilter, error) {
	filter := &pathFilter{
		root:        root,
		excludeDirs: make(map[string]bool, len(opts.ExcludeDirs)),
		skip:        make(map[string]bool, len(opts.SkipFiles)),
	}

	for _, ext := range opts.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		filter.extensions = append(filter.extensions, ext)
	}

	for _, dir := range opts.ExcludeDirs {
		filter.excludeDirs[dir] = true
	}

	for _, pattern := range opts.Exclude {
		pattern = filepath.ToSlash(pattern)
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}
		filter.globs = append(filter.globs, pattern)
	}

	if opts.UseGitIgnore {
		filter.gitignore = loadGitIgnore(root)
	}

	for _, path := range opts.SkipFiles {
		filter.skip[absPath(path)] = true
	}

	return filter, nil
}

// loadGitIgnore compiles root/.gitignore
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// rel returns path relative to the scan root in slash form
func (f *pathFilter) rel(path string) string {
	rel, err := filepath.Rel(f.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// hasExtension reports whether name ends with a recognised extension (case-insensitive)
func (f *pathFilter) hasExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range f.extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// shouldPruneDir reports whether a directory must not be descended into
func (f *pathFilter) shouldPruneDir(name, rel string) bool {
	if f.excludeDirs[name] {
		return true
	}
	if f.matchesGlob(rel) {
		return true
	}
	return f.gitignore != nil && f.gitignore.MatchesPath(rel+"/")
}

// shouldSkipFile determines if a file should be excluded from scanning
// Returns true if the file should be skipped, false otherwise
func (f *pathFilter) shouldSkipFile(path, rel string) bool {
	if f.skip[absPath(path)] {
		return true
	}
	if f.matchesGlob(rel) {
		return true
	}
	return f.gitignore != nil && f.gitignore.MatchesPath(rel)
}

func (f *pathFilter) matchesGlob(rel string) bool {
	for _, pattern := range f.globs {
		// Patterns were validated in newPathFilter
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// ScanUsage walks root and marks every candidate referenced by a recognised file.
// Excluded directories are pruned before descent, so their contents never count.
// Unreadable files are skipped silently and contribute no evidence.
func ScanUsage(root string, selectors Selectors, opts ScanOptions) (Usage, ScanStats, error) {
	stats := ScanStats{}

	filter, err := newPathFilter(root, opts)
	if err != nil {
		return nil, stats, err
	}

	candidates := selectors.Candidates()
	usage := newUsage(candidates)
	matchers := make([]usageMatcher, len(candidates))
	for i, c := range candidates {
		matchers[i] = newUsageMatcher(c)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			// Unreadable directory: no evidence from its subtree
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if filter.shouldPruneDir(d.Name(), filter.rel(path)) {
				stats.DirsPruned++
				return fs.SkipDir
			}
			return nil
		}

		if !isReadableEntry(d) || !filter.hasExtension(d.Name()) {
			return nil
		}

		if filter.shouldSkipFile(path, filter.rel(path)) {
			stats.FilesSkipped++
			return nil
		}

		text, err := readSource(path)
		if err != nil {
			stats.FilesUnreadable++
			return nil
		}
		stats.FilesScanned++

		for _, m := range matchers {
			if usage[m.candidate] {
				continue
			}
			if m.matches(text) {
				usage.markUsed(m.candidate)
			}
		}
		return nil
	})
	if err != nil {
		return nil, stats, fmt.Errorf("walk %s: %w", root, err)
	}

	return usage, stats, nil
}

// isReadableEntry accepts regular files and symlinks (which are resolved on read)
func isReadableEntry(d fs.DirEntry) bool {
	mode := d.Type()
	return mode.IsRegular() || mode&fs.ModeSymlink != 0
}

// readSource reads a scanned file. Invalid UTF-8 sequences are dropped.
func readSource(path string) (string, error) {
	// #nosec G304 - path comes from walking the project root
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(content), ""), nil
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(cwd, absPath(path))
	if err != nil {
		return path
	}

	return rel
}
