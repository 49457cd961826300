package cssusage

import (
	"regexp"
	"sort"
)

// Selector patterns. These run over the raw stylesheet text, so they also
// match inside comments, strings, url() values, decimals and hex colours.
// Such noise is accepted; the length and denylist filters remove most of it.
var (
	classSelector = regexp.MustCompile(`\.([a-zA-Z0-9_-]+)`)
	idSelector    = regexp.MustCompile(`#([a-zA-Z0-9_-]+)`)
)

// builtinDenylist holds selector names too generic to report
var builtinDenylist = []string{
	"admin",
	"page-wrap",
	"btn",
	"modal",
	"modal-backdrop",
	"app-modal-dialog",
	"card",
	"inline",
	"img",
	"row",
	"col",
	"btn-primary",
}

// DefaultDenylist returns a copy of the built-in denylist.
func DefaultDenylist() []string {
	names := make([]string, len(builtinDenylist))
	copy(names, builtinDenylist)
	return names
}

// Denylist is a set of names excluded from candidacy regardless of usage
type Denylist map[string]struct{}

// NewDenylist builds the built-in denylist plus any extra names.
// The built-in entries cannot be removed.
func NewDenylist(extra ...string) Denylist {
	d := make(Denylist, len(builtinDenylist)+len(extra))
	for _, name := range builtinDenylist {
		d[name] = struct{}{}
	}
	for _, name := range extra {
		if name != "" {
			d[name] = struct{}{}
		}
	}
	return d
}

// Contains reports whether name is denylisted
func (d Denylist) Contains(name string) bool {
	_, ok := d[name]
	return ok
}

// Selectors holds the deduplicated class and id names of a stylesheet
type Selectors struct {
	Classes map[string]struct{}
	IDs     map[string]struct{}
}

// ExtractSelectors collects class and id names from stylesheet text.
// Names in the denylist and names of a single character are dropped.
func ExtractSelectors(css string, denylist Denylist) Selectors {
	return Selectors{
		Classes: collectNames(classSelector, css, denylist),
		IDs:     collectNames(idSelector, css, denylist),
	}
}

// collectNames gathers the first capture group of every match
func collectNames(pattern *regexp.Regexp, css string, denylist Denylist) map[string]struct{} {
	names := make(map[string]struct{})
	for _, match := range pattern.FindAllStringSubmatch(css, -1) {
		name := match[1]
		if len(name) <= 1 || denylist.Contains(name) {
			continue
		}
		names[name] = struct{}{}
	}
	return names
}

// Candidates returns every selector as a candidate, classes first, each group sorted by name
func (s Selectors) Candidates() []Candidate {
	candidates := make([]Candidate, 0, len(s.Classes)+len(s.IDs))
	for _, name := range sortedNames(s.Classes) {
		candidates = append(candidates, Candidate{Kind: KindClass, Name: name})
	}
	for _, name := range sortedNames(s.IDs) {
		candidates = append(candidates, Candidate{Kind: KindID, Name: name})
	}
	return candidates
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
