package scan

import (
	"path"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/laminate/internal/ruleset"
)

func file(p string, size int64) Entry {
	return Entry{Path: p, Name: path.Base(p), Size: size}
}

func TestDecideIgnoreListsWinFirst(t *testing.T) {
	fs := memfs.New()
	web := ruleset.Web()

	c := Decide(fs, file("package-lock.json", 9000), web)
	assert.False(t, c.Include)
	assert.Equal(t, ReasonExcluded, c.Reason, "ignored name beats the .json allow rule")

	c = Decide(fs, file("src/logo.svg", 100), web)
	assert.False(t, c.Include)
	assert.Equal(t, ReasonExcluded, c.Reason)

	c = Decide(fs, file(".gitignore", 10), web)
	assert.False(t, c.Include, "dotfiles are extensionless and .gitignore is name-ignored")
}

func TestDecideRootAllowNames(t *testing.T) {
	fs := memfs.New()
	web := ruleset.Web()

	c := Decide(fs, file("citation.cff", 50), web)
	assert.True(t, c.Include)
	assert.Equal(t, ReasonMatchedName, c.Reason)

	// The same name below the root is not allow-listed.
	c = Decide(fs, file("src/citation.cff", 50), web)
	assert.False(t, c.Include)
	assert.Equal(t, ReasonUnmatched, c.Reason)
}

func TestDecideExtensionRules(t *testing.T) {
	fs := memfs.New()
	web := ruleset.Web()

	c := Decide(fs, file("src/index.ts", 40), web)
	assert.True(t, c.Include)
	assert.Equal(t, ReasonMatchedExt, c.Reason)

	c = Decide(fs, file("src/notes.TXT", 40), web)
	assert.False(t, c.Include, "unlisted extension stays out regardless of case")

	c = Decide(fs, file("src/app.exe", 40), web)
	assert.False(t, c.Include)
}

func TestDecideCompositeSuffixPrecedence(t *testing.T) {
	fs := memfs.New()

	rs := ruleset.Ruleset{
		Name:      "composite",
		AllowExts: []string{".config.js"},
	}
	rs.Normalize()

	c := Decide(fs, file("app.config.js", 30), rs)
	assert.True(t, c.Include, "two-part suffix matches even when plain .js is not allowed")
	assert.Equal(t, ReasonMatchedExt, c.Reason)

	c = Decide(fs, file("app.js", 30), rs)
	assert.False(t, c.Include)
}

func TestDecideExtensionlessTokens(t *testing.T) {
	fs := memfs.New()
	django := ruleset.Django()

	c := Decide(fs, file("back/Pipfile", 200), django)
	assert.True(t, c.Include, "extensionless allow token matches by full name")
	assert.Equal(t, ReasonMatchedName, c.Reason)

	c = Decide(fs, file("back/Pipfile.lock", 90000), django)
	assert.False(t, c.Include)
	assert.Equal(t, ReasonExcluded, c.Reason)

	c = Decide(fs, file("back/poetry.lock", 90000), django)
	assert.False(t, c.Include, ".lock content is ignored")
}

func TestDecideIgnoredTokenCollision(t *testing.T) {
	// A filename that doubles as a configured extension token: the
	// ignore rule yields only when the exact name is allow-listed.
	fs := memfs.New()
	rs := ruleset.Ruleset{
		Name:       "collision",
		AllowExts:  []string{"Procfile"},
		IgnoreExts: []string{"Procfile"},
	}
	rs.Normalize()

	c := Decide(fs, file("Procfile", 12), rs)
	assert.True(t, c.Include)

	rs2 := ruleset.Ruleset{Name: "no-allow", IgnoreExts: []string{"Procfile"}, AllowExts: []string{".md"}}
	rs2.Normalize()
	c = Decide(fs, file("Procfile", 12), rs2)
	assert.False(t, c.Include)
}

func TestDecideExtensionlessSniffing(t *testing.T) {
	fs := memfs.New()
	build := ruleset.Build()

	require.NoError(t, util.WriteFile(fs, "LICENSE", []byte("MIT License\n"), 0o644))
	require.NoError(t, util.WriteFile(fs, "launcher", []byte{0x7f, 'E', 'L', 'F', 0x00}, 0o644))

	c := Decide(fs, file("LICENSE", 12), build)
	assert.True(t, c.Include)
	assert.Equal(t, ReasonText, c.Reason)

	c = Decide(fs, file("launcher", 5), build)
	assert.False(t, c.Include)
	assert.Equal(t, ReasonBinary, c.Reason)

	// Without sniffing enabled, extensionless files stay out.
	web := ruleset.Web()
	c = Decide(fs, file("LICENSE", 12), web)
	assert.False(t, c.Include)
	assert.Equal(t, ReasonUnmatched, c.Reason)
}
