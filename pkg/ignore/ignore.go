// Package ignore builds the set of paths excluded from a directory walk.
//
// A Set merges three kinds of rules:
//
//   - explicit exclusions, resolved against the working directory and matched
//     as path prefixes (or as doublestar globs when they contain glob syntax);
//   - gitignore rules read from the working directory's .gitignore and any
//     extra ignore files;
//   - optionally, every .gitignore found inside the traversal root, each
//     scoped to its own directory.
//
// While gitignore rules apply, any directory named .git is pruned as git
// itself does.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitmatch "github.com/go-git/go-git/v5/plumbing/format/gitignore"
	gitignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

const (
	// GitignoreFile is the name of the ignore file read from the working directory.
	GitignoreFile = ".gitignore"
	// GitDir is the repository database, pruned whenever gitignore rules apply.
	GitDir = ".git"
)

// Matcher reports whether a walked path is excluded.
type Matcher interface {
	Excludes(path string, isDir bool) bool
}

// Options controls how a Set is resolved.
type Options struct {
	WorkDir      string   // Directory exclusions and .gitignore are resolved against; defaults to the process cwd.
	Root         string   // Traversal root, used to scope nested .gitignore files.
	Exclude      []string // Explicit exclusion paths or globs.
	Skip         []string // Paths excluded verbatim, never interpreted as globs.
	UseGitignore bool     // Apply <WorkDir>/.gitignore and prune .git directories.
	Nested       bool     // Also apply .gitignore files found below Root.
	IgnoreFiles  []string // Extra gitignore-syntax files, applied regardless of UseGitignore.
	SkipHidden   bool     // Exclude entries whose name starts with a dot.
}

// Set is the resolved, read-only collection of exclusion rules.
type Set struct {
	workDir    string
	root       string
	prefixes   []string
	globs      []string
	flat       *gitignore.GitIgnore
	nested     gitmatch.Matcher
	skipGitDir bool
	skipHidden bool
	logger     *zap.Logger
}

// Resolve builds a Set from the given options. Missing or unreadable ignore
// files are logged and treated as empty; only an invalid exclusion glob or an
// unresolvable working directory is an error.
func Resolve(opts Options, logger *zap.Logger) (*Set, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		workDir = wd
	}
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	s := &Set{
		workDir:    workDir,
		skipGitDir: opts.UseGitignore,
		skipHidden: opts.SkipHidden,
		logger:     logger,
	}

	for _, ex := range opts.Exclude {
		if ex == "" {
			continue
		}
		if isGlob(ex) {
			pattern := normalizePattern(ex)
			if !doublestar.ValidatePattern(pattern) {
				return nil, fmt.Errorf("invalid exclude pattern %q", ex)
			}
			s.globs = append(s.globs, pattern)
			continue
		}
		s.prefixes = append(s.prefixes, resolveAgainst(workDir, ex))
	}
	for _, p := range opts.Skip {
		if p != "" {
			s.prefixes = append(s.prefixes, resolveAgainst(workDir, p))
		}
	}

	var lines []string
	if opts.UseGitignore {
		lines = append(lines, readIgnoreLines(filepath.Join(workDir, GitignoreFile), logger)...)
	}
	for _, f := range opts.IgnoreFiles {
		lines = append(lines, readIgnoreLines(resolveAgainst(workDir, f), logger)...)
	}
	if len(lines) > 0 {
		s.flat = gitignore.CompileIgnoreLines(lines...)
	}

	if opts.UseGitignore && opts.Nested && opts.Root != "" {
		root, err := filepath.Abs(opts.Root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root %s: %w", opts.Root, err)
		}
		s.root = root
		s.nested = loadNested(root, logger)
	}

	logger.Debug("Resolved ignore set",
		zap.String("workDir", workDir),
		zap.Strings("prefixes", s.prefixes),
		zap.Strings("globs", s.globs),
		zap.Int("gitignoreLines", len(lines)),
		zap.Bool("nested", s.nested != nil))
	return s, nil
}

// Len returns the number of explicit exclusion rules.
func (s *Set) Len() int {
	return len(s.prefixes) + len(s.globs)
}

// Excludes reports whether path is excluded. Relative paths are taken
// relative to the process working directory, as filepath.WalkDir yields them.
// For directories a true result means the whole subtree is pruned.
func (s *Set) Excludes(path string, isDir bool) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		s.logger.Warn("Failed to resolve path for matching", zap.String("path", path), zap.Error(err))
		return false
	}

	name := filepath.Base(abs)
	if s.skipGitDir && isDir && name == GitDir {
		return true
	}
	if s.skipHidden && strings.HasPrefix(name, ".") {
		return true
	}

	for _, p := range s.prefixes {
		if hasPathPrefix(abs, p) {
			return true
		}
	}

	if len(s.globs) > 0 {
		rel := normalizePath(relativeTo(s.workDir, abs))
		target := filepath.ToSlash(abs)
		for _, g := range s.globs {
			subject := rel
			if strings.HasPrefix(g, "/") {
				subject = target
			}
			if ok, _ := doublestar.Match(g, subject); ok {
				return true
			}
		}
	}

	if s.flat != nil {
		if rel, ok := within(s.workDir, abs); ok {
			if isDir {
				rel += "/"
			}
			if s.flat.MatchesPath(rel) {
				return true
			}
		}
	}

	if s.nested != nil {
		if rel, ok := within(s.root, abs); ok {
			if s.nested.Match(strings.Split(rel, "/"), isDir) {
				return true
			}
		}
	}

	return false
}

// resolveAgainst joins a relative path onto dir; absolute paths are kept.
func resolveAgainst(dir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(dir, p)
}
