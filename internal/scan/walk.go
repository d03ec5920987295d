package scan

import (
	"fmt"
	"path"
	"sort"

	billy "github.com/go-git/go-billy/v5"

	"github.com/agentic-research/laminate/internal/ruleset"
)

// Result is the outcome of walking one project tree.
type Result struct {
	Lines      []StructureLine
	Candidates []Candidate
	Warnings   []string
}

// Walk traverses the project rooted at fsys in sorted pre-order and
// returns the structure listing plus the classified content
// candidates. Root-level directories outside the target set are
// listed but not descended; inside an expanded target subtree every
// directory is descended. Unreadable directories are skipped with a
// warning and the walk continues with their siblings.
func Walk(fsys billy.Filesystem, rs ruleset.Ruleset) Result {
	var res Result
	walkDir(fsys, "", 1, false, rs, &res)
	return res
}

func walkDir(fsys billy.Filesystem, dir string, depth int, expanded bool, rs ruleset.Ruleset, res *Result) {
	rel := dir
	if rel == "" {
		rel = "."
	}
	infos, err := fsys.ReadDir(rel)
	if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("could not read directory %s: %v", rel, err))
		return
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	atRoot := dir == ""

	for _, info := range infos {
		name := info.Name()
		childPath := path.Join(dir, name)

		if info.IsDir() {
			if rs.IsIgnoredDir(name) {
				continue
			}
			if atRoot && rs.IsRootIgnoredDir(name) {
				continue
			}
			if atRoot && !rs.IsTarget(name) {
				res.Lines = append(res.Lines, StructureLine{Depth: depth, Name: name, Dir: true, Ignored: true})
				continue
			}
			res.Lines = append(res.Lines, StructureLine{Depth: depth, Name: name, Dir: true})
			walkDir(fsys, childPath, depth+1, true, rs, res)
			continue
		}

		if rs.IsIgnoredFile(name) {
			continue
		}
		res.Lines = append(res.Lines, StructureLine{Depth: depth, Name: name})

		// Content is only ever pulled from the root level or from
		// inside an expanded target subtree.
		if atRoot || expanded {
			e := Entry{Path: childPath, Name: name, Size: info.Size()}
			res.Candidates = append(res.Candidates, Decide(fsys, e, rs))
		}
	}
}
