// Package scan walks a single project tree and decides, entry by
// entry, what the report will show. It produces an ordered structure
// listing plus a classified list of content candidates; it never
// writes anything itself. All filesystem access goes through
// billy.Filesystem so tests can inject an in-memory tree.
package scan

import "strings"

// Entry is one filesystem node seen by the walker. Path is relative
// to the project root, slash-separated.
type Entry struct {
	Path string
	Name string
	Dir  bool
	Size int64
}

// StructureLine is one row of the structure listing. Ignored marks a
// root-level directory that is listed but not descended into.
type StructureLine struct {
	Depth   int
	Name    string
	Dir     bool
	Ignored bool
}

// Reason records why the classifier included or excluded a candidate.
type Reason string

const (
	ReasonMatchedName Reason = "matched-by-name"
	ReasonMatchedExt  Reason = "matched-by-extension"
	ReasonText        Reason = "detected-text"
	ReasonExcluded    Reason = "explicitly-excluded"
	ReasonBinary      Reason = "binary-excluded"
	ReasonUnmatched   Reason = "unmatched"
)

// Candidate is a file eligible for content inclusion together with
// the classifier's verdict. Produced once per file, never re-evaluated.
type Candidate struct {
	Entry   Entry
	Include bool
	Reason  Reason
}

// extOf returns the lower-cased final suffix of name, or "" when the
// name has no conventional extension. A lone leading dot does not
// count: ".gitignore" is extensionless, "app.min.js" yields ".js".
func extOf(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return ""
	}
	return strings.ToLower(name[i:])
}

// compositeExtOf returns the two-part suffix of name (".config.js"
// for "vite.config.js"), or "" when there is none.
func compositeExtOf(name string) string {
	ext := extOf(name)
	if ext == "" {
		return ""
	}
	inner := extOf(name[:len(name)-len(ext)])
	if inner == "" {
		return ""
	}
	return inner + ext
}
