// Package ruleset defines the selection policy for project summaries.
// A Ruleset is constructed once (from a built-in preset or a YAML file),
// normalized, and then shared read-only by the walker, the classifier
// and the renderer. Presets differ only in data, never in engine logic.
package ruleset

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Ruleset holds the complete ruleset for one class of project.
// Extension entries start with a dot and are matched case-insensitively;
// entries without a leading dot are extensionless tokens (e.g. "Pipfile")
// matched against the full filename, case-sensitively.
type Ruleset struct {
	// Name identifies the ruleset in console output.
	Name string `yaml:"name"`

	// OutputSuffix is appended to the project name to form the report
	// filename (e.g. "_web_summary.txt").
	OutputSuffix string `yaml:"output_suffix"`

	// Targets are root-level directory names expanded recursively.
	// Every other root directory is listed but not descended.
	Targets []string `yaml:"targets"`

	// AllowExts lists suffixes whose content is included. Composite
	// two-part suffixes such as ".config.js" are honored and take
	// precedence over their plain counterpart.
	AllowExts []string `yaml:"allow_extensions"`

	// RootAllowNames are exact filenames included when found at the
	// project root, regardless of extension.
	RootAllowNames []string `yaml:"root_files"`

	// IgnoreNames are exact filenames whose content is never included.
	IgnoreNames []string `yaml:"ignore_content_files"`

	// IgnoreExts are suffixes whose content is never included.
	IgnoreExts []string `yaml:"ignore_content_extensions"`

	// IgnoreDirsRoot are directory names dropped entirely when they
	// appear at the project root.
	IgnoreDirsRoot []string `yaml:"ignore_dirs_root"`

	// IgnoreDirsAnywhere are directory names dropped at any depth.
	IgnoreDirsAnywhere []string `yaml:"ignore_dirs_anywhere"`

	// IgnoreFilesAnywhere are filenames dropped at any depth. They do
	// not even appear in the structure listing.
	IgnoreFilesAnywhere []string `yaml:"ignore_files_anywhere"`

	// MaxFileSize caps included content in bytes. Zero means no cap.
	MaxFileSize int64 `yaml:"max_file_size_bytes"`

	// DetectBinary enables content sniffing for files whose extension
	// is not a reliable signal.
	DetectBinary bool `yaml:"detect_binary"`

	// BinaryExts short-circuit the sniffer: these suffixes are always
	// treated as binary without reading the file.
	BinaryExts []string `yaml:"binary_extensions"`
}

// Normalize sorts and de-duplicates every rule list and lower-cases
// dotted extension entries. It must be called once after construction;
// sorted lists keep report headers and console summaries deterministic
// across runs.
func (r *Ruleset) Normalize() {
	r.Targets = normalize(r.Targets, false)
	r.AllowExts = normalize(r.AllowExts, true)
	r.RootAllowNames = normalize(r.RootAllowNames, false)
	r.IgnoreNames = normalize(r.IgnoreNames, false)
	r.IgnoreExts = normalize(r.IgnoreExts, true)
	r.IgnoreDirsRoot = normalize(r.IgnoreDirsRoot, false)
	r.IgnoreDirsAnywhere = normalize(r.IgnoreDirsAnywhere, false)
	r.IgnoreFilesAnywhere = normalize(r.IgnoreFilesAnywhere, false)
	r.BinaryExts = normalize(r.BinaryExts, true)
}

// normalize trims, optionally lower-cases dotted entries, de-duplicates
// and sorts. Entries without a leading dot keep their case even in
// extension lists: they are exact-name tokens.
func normalize(entries []string, extList bool) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if extList && strings.HasPrefix(e, ".") {
			e = strings.ToLower(e)
		}
		if !slices.Contains(out, e) {
			out = append(out, e)
		}
	}
	slices.Sort(out)
	return out
}

// WithTargets returns a copy of the ruleset with the target set replaced.
func (r Ruleset) WithTargets(targets []string) Ruleset {
	r.Targets = normalize(targets, false)
	return r
}

func (r Ruleset) IsTarget(name string) bool { return slices.Contains(r.Targets, name) }
func (r Ruleset) AllowsExt(tok string) bool { return slices.Contains(r.AllowExts, tok) }
func (r Ruleset) IsRootAllowName(n string) bool { return slices.Contains(r.RootAllowNames, n) }
func (r Ruleset) IsIgnoredName(n string) bool { return slices.Contains(r.IgnoreNames, n) }
func (r Ruleset) IsIgnoredExt(tok string) bool { return slices.Contains(r.IgnoreExts, tok) }
func (r Ruleset) IsRootIgnoredDir(n string) bool { return slices.Contains(r.IgnoreDirsRoot, n) }
func (r Ruleset) IsIgnoredDir(n string) bool { return slices.Contains(r.IgnoreDirsAnywhere, n) }
func (r Ruleset) IsIgnoredFile(n string) bool { return slices.Contains(r.IgnoreFilesAnywhere, n) }
func (r Ruleset) IsBinaryExt(tok string) bool { return slices.Contains(r.BinaryExts, tok) }

// Load reads a custom ruleset from a YAML file.
func Load(path string) (Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ruleset{}, fmt.Errorf("read ruleset file: %w", err)
	}
	var r Ruleset
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Ruleset{}, fmt.Errorf("parse ruleset file %s: %w", path, err)
	}
	if r.Name == "" {
		r.Name = "custom"
	}
	if r.OutputSuffix == "" {
		r.OutputSuffix = "_summary.txt"
	}
	if len(r.AllowExts) == 0 && len(r.RootAllowNames) == 0 {
		return Ruleset{}, fmt.Errorf("ruleset %s selects no content: allow_extensions and root_files are both empty", r.Name)
	}
	r.Normalize()
	return r, nil
}
