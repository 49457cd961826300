package cssusage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (relative path -> content) under root
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func defaultScanOptions() ScanOptions {
	return ScanOptions{
		Extensions:  DefaultExtensions(),
		ExcludeDirs: DefaultExcludeDirs(),
	}
}

func TestUsageMatcher(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		text      string
		want      bool
	}{
		{
			name:      "class attribute",
			candidate: Candidate{Kind: KindClass, Name: "foo-bar"},
			text:      `<div class="foo-bar">`,
			want:      true,
		},
		{
			name:      "class attribute among others",
			candidate: Candidate{Kind: KindClass, Name: "foo-bar"},
			text:      `<div class="row foo-bar wide">`,
			want:      true,
		},
		{
			name:      "bare word in script",
			candidate: Candidate{Kind: KindClass, Name: "is-open"},
			text:      `el.classList.add('is-open');`,
			want:      true,
		},
		{
			name:      "id attribute",
			candidate: Candidate{Kind: KindID, Name: "main-header"},
			text:      `<header id="main-header">`,
			want:      true,
		},
		{
			name:      "id referenced from script",
			candidate: Candidate{Kind: KindID, Name: "main-header"},
			text:      `document.getElementById("main-header")`,
			want:      true,
		},
		{
			name:      "longer word does not count",
			candidate: Candidate{Kind: KindClass, Name: "foo-bar"},
			text:      `<div class="foo-barista">`,
			want:      false,
		},
		{
			name:      "hyphen-joined name still counts",
			candidate: Candidate{Kind: KindClass, Name: "foo-bar"},
			text:      `<div class="my-foo-bar">`,
			want:      true,
		},
		{
			name:      "non-ASCII letter is a word boundary",
			candidate: Candidate{Kind: KindClass, Name: "foo-bar"},
			text:      `éfoo-bar`,
			want:      true,
		},
		{
			name:      "absent",
			candidate: Candidate{Kind: KindClass, Name: "foo-bar"},
			text:      `<div class="baz">`,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newUsageMatcher(tt.candidate)
			require.Equal(t, tt.want, m.matches(tt.text))
		})
	}
}

func TestPathFilterHasExtension(t *testing.T) {
	filter, err := newPathFilter(".", ScanOptions{Extensions: []string{".html", "php", " .Twig "}})
	require.NoError(t, err)

	tests := []struct {
		name string
		file string
		want bool
	}{
		{name: "lowercase", file: "index.html", want: true},
		{name: "uppercase", file: "INDEX.HTML", want: true},
		{name: "extension without dot", file: "order.php", want: true},
		{name: "trimmed and lowered", file: "layout.twig", want: true},
		{name: "unknown extension", file: "data.json", want: false},
		{name: "no extension", file: "Makefile", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, filter.hasExtension(tt.file), "hasExtension(%q)", tt.file)
		})
	}
}

func TestNewPathFilter_InvalidPattern(t *testing.T) {
	_, err := newPathFilter(".", ScanOptions{Exclude: []string{"legacy/["}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestScanUsage_MarksReferencedCandidates(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"index.html":       `<div class="foo-bar">`,
		"js/app.js":        `document.querySelector('#main-header');`,
		"docs/README.md":   "no selectors here",
		"templates/x.twig": "{{ nothing }}",
	})

	selectors := ExtractSelectors(".foo-bar { }\n#main-header { }\n.orphan { }", NewDenylist())
	usage, stats, err := ScanUsage(root, selectors, defaultScanOptions())
	require.NoError(t, err)

	assert.True(t, usage[Candidate{Kind: KindClass, Name: "foo-bar"}])
	assert.True(t, usage[Candidate{Kind: KindID, Name: "main-header"}])
	assert.False(t, usage[Candidate{Kind: KindClass, Name: "orphan"}])
	assert.Len(t, usage, 3)
	assert.Equal(t, 4, stats.FilesScanned)
}

func TestScanUsage_CaseInsensitiveExtensions(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"PAGE.HTML": `<p class="shout">`,
		"notes.txt": `<p class="quiet">`,
	})

	selectors := ExtractSelectors(".shout { }\n.quiet { }", NewDenylist())
	usage, stats, err := ScanUsage(root, selectors, defaultScanOptions())
	require.NoError(t, err)

	assert.True(t, usage[Candidate{Kind: KindClass, Name: "shout"}])
	assert.False(t, usage[Candidate{Kind: KindClass, Name: "quiet"}])
	assert.Equal(t, 1, stats.FilesScanned)
}

func TestScanUsage_PrunesExcludedDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"vendor/lib/widget.js":      "hidden-vendor",
		"node_modules/pkg/index.js": "hidden-module",
		".git/HEAD.md":              "hidden-git",
		"src/node_modules/deep.js":  "hidden-nested",
		"src/app.js":                "visible",
	})

	css := ".hidden-vendor{} .hidden-module{} .hidden-git{} .hidden-nested{} .visible{}"
	selectors := ExtractSelectors(css, NewDenylist())
	usage, stats, err := ScanUsage(root, selectors, defaultScanOptions())
	require.NoError(t, err)

	for _, name := range []string{"hidden-vendor", "hidden-module", "hidden-git", "hidden-nested"} {
		assert.False(t, usage[Candidate{Kind: KindClass, Name: name}], "%s lives only in an excluded dir", name)
	}
	assert.True(t, usage[Candidate{Kind: KindClass, Name: "visible"}])
	assert.Equal(t, 4, stats.DirsPruned)
	assert.Equal(t, 1, stats.FilesScanned)
}

func TestScanUsage_SkipFiles(t *testing.T) {
	root := t.TempDir()
	stylesheet := filepath.Join(root, "assets", "css", "admin.css")
	writeTree(t, root, map[string]string{
		"assets/css/admin.css": ".self-only { }",
	})

	selectors := ExtractSelectors(".self-only { }", NewDenylist())

	opts := defaultScanOptions()
	opts.SkipFiles = []string{stylesheet}
	usage, stats, err := ScanUsage(root, selectors, opts)
	require.NoError(t, err)
	assert.False(t, usage[Candidate{Kind: KindClass, Name: "self-only"}])
	assert.Equal(t, 1, stats.FilesSkipped)

	usage, _, err = ScanUsage(root, selectors, defaultScanOptions())
	require.NoError(t, err)
	assert.True(t, usage[Candidate{Kind: KindClass, Name: "self-only"}], "without SkipFiles the definition counts as a reference")
}

func TestScanUsage_ExcludeGlob(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"legacy/old.html": `<div class="retired">`,
		"pages/draft.php": `<div class="draft-only">`,
	})

	selectors := ExtractSelectors(".retired { }\n.draft-only { }", NewDenylist())

	opts := defaultScanOptions()
	opts.Exclude = []string{"legacy/**", "**/draft.php"}
	usage, _, err := ScanUsage(root, selectors, opts)
	require.NoError(t, err)

	assert.False(t, usage[Candidate{Kind: KindClass, Name: "retired"}])
	assert.False(t, usage[Candidate{Kind: KindClass, Name: "draft-only"}])
}

func TestScanUsage_GitIgnore(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":     "generated.html\n",
		"generated.html": `<div class="built">`,
	})

	selectors := ExtractSelectors(".built { }", NewDenylist())
	built := Candidate{Kind: KindClass, Name: "built"}

	usage, _, err := ScanUsage(root, selectors, defaultScanOptions())
	require.NoError(t, err)
	assert.True(t, usage[built], "gitignore is not applied by default")

	opts := defaultScanOptions()
	opts.UseGitIgnore = true
	usage, stats, err := ScanUsage(root, selectors, opts)
	require.NoError(t, err)
	assert.False(t, usage[built])
	assert.Equal(t, 1, stats.FilesSkipped)
}

func TestScanUsage_UnreadableFileIsSkipped(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"b.html": `<div class="after-broken">`,
	})
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.html"), filepath.Join(root, "a.html")))

	selectors := ExtractSelectors(".after-broken { }", NewDenylist())
	usage, stats, err := ScanUsage(root, selectors, defaultScanOptions())
	require.NoError(t, err)

	assert.True(t, usage[Candidate{Kind: KindClass, Name: "after-broken"}])
	assert.Equal(t, 1, stats.FilesUnreadable)
	assert.Equal(t, 1, stats.FilesScanned)
}

func TestScanUsage_InvalidUTF8(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"latin1.html": "caf\xe9 <span class=\"menu-item\">",
	})

	selectors := ExtractSelectors(".menu-item { }", NewDenylist())
	usage, _, err := ScanUsage(root, selectors, defaultScanOptions())
	require.NoError(t, err)
	assert.True(t, usage[Candidate{Kind: KindClass, Name: "menu-item"}])
}

func TestScanUsage_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nope")

	_, _, err := ScanUsage(root, Selectors{}, defaultScanOptions())
	require.Error(t, err)
}
