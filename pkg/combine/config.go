// File: pkg/combine/config.go
package combine

// Arguments holds the configuration options for a single copy run.
type Arguments struct {
	Directory        string   // Root of the traversal.
	OutputFile       string   // Destination file; empty selects clipboard mode.
	FileTypes        []string // Extension allow-list; empty lets every file through.
	Exclude          []string // Explicit exclusion paths or globs, relative to WorkDir.
	DisableGitignore bool     // If true, .gitignore rules are not applied.
	NestedGitignore  bool     // If true, .gitignore files inside Directory are honored too.
	IgnoreFiles      []string // Additional gitignore-syntax files.
	SkipHidden       bool     // If true, dot-prefixed entries are skipped.
	WorkDir          string   // Base for exclusions and .gitignore; defaults to the process cwd.
}
