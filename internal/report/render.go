// Package report serializes a walked project into the two-part
// summary document: the indented structure listing followed by the
// selected file contents. The banners and file delimiters are part of
// the format contract and are reproduced byte-exact.
package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/agentic-research/laminate/internal/ruleset"
	"github.com/agentic-research/laminate/internal/scan"
)

const (
	sectionBanner = "=============================="
	fileDelim     = "==============="
	indentUnit    = "  "
)

// printer forwards writes to w and remembers the first error, so a
// failing output file aborts rendering without error plumbing on
// every line.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) f(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Render writes the full summary document for one project. Individual
// file failures are isolated into inline placeholders; the returned
// error only reflects the output writer itself.
func Render(w io.Writer, fsys billy.Filesystem, project string, rs ruleset.Ruleset, res scan.Result) error {
	p := &printer{w: w}

	p.f("%s\n Project Structure\n%s\n", sectionBanner, sectionBanner)
	p.f("(Content from subfolders except %s was ignored)\n", strings.Join(rs.Targets, ", "))
	writeIgnoreNote(p, rs)

	p.f("- %s/ (root)\n", project)
	for _, line := range res.Lines {
		p.f("%s- %s%s%s\n",
			strings.Repeat(indentUnit, line.Depth),
			line.Name,
			suffixIf(line.Dir, "/"),
			suffixIf(line.Ignored, " [...ignored]"))
	}

	p.f("\n\n%s\n Relevant File Contents\n%s\n\n", sectionBanner, sectionBanner)

	included := make([]scan.Candidate, 0, len(res.Candidates))
	for _, c := range res.Candidates {
		if c.Include {
			included = append(included, c)
		}
	}
	sort.Slice(included, func(i, j int) bool { return included[i].Entry.Path < included[j].Entry.Path })

	for _, c := range included {
		writeBlock(p, fsys, c.Entry, rs)
	}
	return p.err
}

// writeIgnoreNote emits the explanatory line enumerating name and
// extension ignore rules, or a bare newline when there are none.
func writeIgnoreNote(p *printer, rs ruleset.Ruleset) {
	var parts []string
	if len(rs.IgnoreNames) > 0 {
		parts = append(parts, "files like "+strings.Join(rs.IgnoreNames, ", "))
	}
	if len(rs.IgnoreExts) > 0 {
		parts = append(parts, "extensions "+strings.Join(rs.IgnoreExts, ", "))
	}
	if len(parts) > 0 {
		p.f("(Content from %s ignored)\n\n", strings.Join(parts, " and "))
	} else {
		p.f("\n")
	}
}

func writeBlock(p *printer, fsys billy.Filesystem, e scan.Entry, rs ruleset.Ruleset) {
	rel := e.Path

	// Size cap applies before any read.
	if rs.MaxFileSize > 0 && e.Size > rs.MaxFileSize {
		p.f("--- File: %s --- (CONTENT IGNORED - TOO LARGE)\n\n", rel)
		p.f("%s End of %s %s\n\n", fileDelim, rel, fileDelim)
		return
	}

	// Presets with sniffing enabled re-check at render time: content
	// may have been selected purely by extension.
	if rs.DetectBinary && scan.IsBinary(fsys, rel, rs) {
		p.f("--- File: %s ---\n\n", rel)
		p.f("*** BINARY FILE - CONTENT NOT DISPLAYED ***\n")
		p.f("\n\n%s End of %s %s\n\n", fileDelim, rel, fileDelim)
		return
	}

	content, err := util.ReadFile(fsys, rel)
	if err != nil {
		p.f("--- File: %s ---\n\n", rel)
		p.f("*** Error reading file: %v ***\n", err)
		p.f("\n\n%s End of %s (with error) %s\n\n", fileDelim, rel, fileDelim)
		return
	}

	// Empty files are listed in the structure but get no block.
	if len(bytes.TrimSpace(content)) == 0 && e.Size == 0 {
		return
	}

	p.f("--- File: %s ---\n\n", rel)
	p.f("%s", strings.ToValidUTF8(string(content), "�"))
	p.f("\n\n%s End of %s %s\n\n", fileDelim, rel, fileDelim)
}

func suffixIf(cond bool, s string) string {
	if cond {
		return s
	}
	return ""
}
