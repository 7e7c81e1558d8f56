// Package lib contains the reusable services behind the pngme commands.
package lib

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/denormal/go-gitignore"
)

// --- Constants ---

// IgnoreFilename is the name of the file holding scan ignore patterns.
const IgnoreFilename = ".pngmeignore"

// PNGExtension is the file suffix scan looks for, compared case-insensitively.
const PNGExtension = ".png"

// BackupSuffix is appended to a file's name when a backup copy is kept.
const BackupSuffix = ".bak"

// defaultIgnorePatterns are skipped by every scan.
var defaultIgnorePatterns = []string{
	".git/**",
	"node_modules/**",
	IgnoreFilename,
}

// Ignorer decides which paths under a root directory a scan should skip.
// It is safe for concurrent use.
type Ignorer struct {
	root    string
	matcher gitignore.GitIgnore

	// The gitignore matcher is not safe for concurrent use, so every
	// match is serialized.
	mu sync.Mutex
}

// NewIgnorer compiles the default patterns plus the root's .pngmeignore file,
// if there is one. The root is resolved through symlinks so that relative
// paths computed later line up with what the walker reports.
func NewIgnorer(root string) *Ignorer {
	canonicalRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		canonicalRoot = root
	}
	return &Ignorer{
		root:    canonicalRoot,
		matcher: loadIgnoreMatcher(canonicalRoot),
	}
}

// Root is the canonical directory the rules are relative to.
func (ig *Ignorer) Root() string {
	return ig.root
}

// Ignored reports whether path should be skipped.
func (ig *Ignorer) Ignored(path string) bool {
	canonicalPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		canonicalPath = path
	}

	relativePath, err := filepath.Rel(ig.root, canonicalPath)
	if err != nil || relativePath == "." || relativePath == ".." || strings.HasPrefix(relativePath, ".."+string(filepath.Separator)) {
		return false
	}
	info, err := os.Stat(canonicalPath)
	isDir := err == nil && info.IsDir()

	ig.mu.Lock()
	defer ig.mu.Unlock()

	// gitignore patterns always use forward slashes.
	match := ig.matcher.Relative(filepath.ToSlash(relativePath), isDir)
	return match != nil && match.Ignore()
}

func loadIgnoreMatcher(root string) gitignore.GitIgnore {
	rawPatterns := append([]string(nil), defaultIgnorePatterns...)

	if content, err := os.ReadFile(filepath.Join(root, IgnoreFilename)); err == nil {
		rawPatterns = append(rawPatterns, strings.Split(string(content), "\n")...)
	}

	var patterns []string
	for _, p := range rawPatterns {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		trimmed = strings.ReplaceAll(trimmed, "\\", "/")
		// A bare "dir/" pattern should also cover everything below it.
		if strings.HasSuffix(trimmed, "/") && !strings.HasSuffix(trimmed, "**/") {
			trimmed += "**"
		}
		patterns = append(patterns, trimmed)
	}

	matcher := gitignore.New(
		strings.NewReader(strings.Join(patterns, "\n")),
		root,
		func(err gitignore.Error) bool { return false },
	)
	if matcher == nil {
		return gitignore.New(strings.NewReader(""), root, nil)
	}
	return matcher
}
