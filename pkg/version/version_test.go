package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())

	orig := version
	t.Cleanup(func() { version = orig })
	version = "v1.2.3"
	assert.Equal(t, "v1.2.3", GetVersion())
}

func TestBuildMetadata(t *testing.T) {
	origCommit, origDate := gitCommit, buildDate
	t.Cleanup(func() { gitCommit, buildDate = origCommit, origDate })

	gitCommit, buildDate = "abc123", "2026-01-01"
	assert.Equal(t, "abc123", GetGitCommit())
	assert.Equal(t, "2026-01-01", GetBuildDate())
}
