package scan

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/laminate/internal/ruleset"
)

func TestIsBinary(t *testing.T) {
	fs := memfs.New()
	rs := ruleset.Build()

	write := func(name string, data []byte) {
		require.NoError(t, util.WriteFile(fs, name, data, 0o644))
	}

	// Text content — should NOT be detected as binary
	write("hello.txt", []byte("hello world\n"))
	assert.False(t, IsBinary(fs, "hello.txt", rs), "plain text should not be binary")

	write("main.go", []byte("package main\n\nfunc main() {}\n"))
	assert.False(t, IsBinary(fs, "main.go", rs), "Go source should not be binary")

	write("empty", []byte{})
	assert.False(t, IsBinary(fs, "empty", rs), "empty file should not be binary")

	// Tabs, newlines and carriage returns sit above the control cutoff
	write("table.txt", []byte("a\tb\r\nnext line\n"))
	assert.False(t, IsBinary(fs, "table.txt", rs), "common whitespace controls are text")

	// NUL byte anywhere in the window
	write("blob", []byte{0x00, 0x41, 0x42})
	assert.True(t, IsBinary(fs, "blob", rs), "leading NUL should be detected")

	write("program", []byte{0x7f, 'E', 'L', 'F', 0, 0, 0})
	assert.True(t, IsBinary(fs, "program", rs), "ELF header should be detected")

	// Control byte below tab, without any NUL
	write("weird", []byte{'o', 'k', 0x01, 'x'})
	assert.True(t, IsBinary(fs, "weird", rs), "low control bytes should be detected")

	// Known-binary extension short-circuits without reading
	write("icon.png", []byte("actually text inside"))
	assert.True(t, IsBinary(fs, "icon.png", rs), ".png is binary by extension alone")

	// Only the first 1024 bytes are examined
	big := make([]byte, 2048)
	for i := range big {
		big[i] = 'a'
	}
	big[1500] = 0x00
	write("tail-null", big)
	assert.False(t, IsBinary(fs, "tail-null", rs), "bytes past the sniff window are not read")
}

func TestIsBinaryFailsSafe(t *testing.T) {
	fs := memfs.New()
	rs := ruleset.Build()

	assert.True(t, IsBinary(fs, "does-not-exist", rs), "unreadable files classify as binary")
}
