package scan

import (
	"strings"

	billy "github.com/go-git/go-billy/v5"

	"github.com/agentic-research/laminate/internal/ruleset"
)

// Decide classifies one file entry against the ruleset. The decision
// is pure over the entry's name and location; only the extensionless
// sniffing branch reads a bounded prefix of the file through fsys.
//
// Precedence, first match wins:
//  1. exact name in the ignored-names list
//  2. extension (or full name, for extensionless files) in the
//     ignored-extensions list — unless the file is extensionless and
//     its full name is an allow token, in which case matching continues
//  3. exact name in the root allow list, for root-level files
//  4. extension in the allow list; a composite two-part suffix such as
//     ".config.js" wins over its plain ".js" counterpart
//  5. extensionless files: included when sniffing is enabled and the
//     content looks like text
func Decide(fsys billy.Filesystem, e Entry, rs ruleset.Ruleset) Candidate {
	ext := extOf(e.Name)

	// Extensionless files compare their full name against extension
	// token lists (so "Pipfile" can appear as an allow token).
	tok := ext
	if tok == "" {
		tok = e.Name
	}

	if rs.IsIgnoredName(e.Name) {
		return Candidate{Entry: e, Reason: ReasonExcluded}
	}

	if rs.IsIgnoredExt(tok) {
		if ext != "" || !rs.AllowsExt(e.Name) {
			return Candidate{Entry: e, Reason: ReasonExcluded}
		}
		// Extensionless allow token colliding with an ignored
		// extension token: fall through to the allow rules.
	}

	atRoot := !strings.Contains(e.Path, "/")
	if atRoot && rs.IsRootAllowName(e.Name) {
		return Candidate{Entry: e, Include: true, Reason: ReasonMatchedName}
	}

	if ext != "" {
		effective := ext
		if composite := compositeExtOf(e.Name); composite != "" && rs.AllowsExt(composite) {
			effective = composite
		}
		if rs.AllowsExt(effective) {
			return Candidate{Entry: e, Include: true, Reason: ReasonMatchedExt}
		}
		return Candidate{Entry: e, Reason: ReasonUnmatched}
	}

	if rs.AllowsExt(e.Name) {
		return Candidate{Entry: e, Include: true, Reason: ReasonMatchedName}
	}

	if rs.DetectBinary {
		if IsBinary(fsys, e.Path, rs) {
			return Candidate{Entry: e, Reason: ReasonBinary}
		}
		return Candidate{Entry: e, Include: true, Reason: ReasonText}
	}

	return Candidate{Entry: e, Reason: ReasonUnmatched}
}
