package scan

import (
	"errors"
	"io"
	"path"

	billy "github.com/go-git/go-billy/v5"

	"github.com/agentic-research/laminate/internal/ruleset"
)

// sniffWindow is the number of leading bytes examined when the
// extension alone is not decisive.
const sniffWindow = 1024

// IsBinary reports whether the file at p should be treated as binary.
// Known-binary extensions short-circuit without a read; otherwise the
// first 1024 bytes are sniffed for a NUL byte or for control bytes
// below tab. Unreadable files classify as binary: on uncertainty the
// report never surfaces raw bytes.
//
// This is a heuristic, not an encoding detector — multi-byte encoded
// text can misclassify.
func IsBinary(fsys billy.Filesystem, p string, rs ruleset.Ruleset) bool {
	if ext := extOf(path.Base(p)); ext != "" && rs.IsBinaryExt(ext) {
		return true
	}

	f, err := fsys.Open(p)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, sniffWindow)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	for _, b := range buf[:n] {
		if b == 0x00 {
			return true
		}
		if b < 0x09 {
			return true
		}
	}
	return false
}
