// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubmed-proxy/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, NCBIAPIKey, "  abc123def456  \n")
				writeFile(t, dir, NCBIEmail, "ops@example.org\n")
				return dir
			},
			want: map[string]string{
				NCBIAPIKey: "abc123def456",
				NCBIEmail:  "ops@example.org",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files, dotfiles, and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, NCBIAPIKey, "valid-key")
				writeFile(t, dir, "blank", "   \n\t  ")
				writeFile(t, dir, ".gitkeep", "ignored")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				return dir
			},
			want: map[string]string{NCBIAPIKey: "valid-key"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_PathIsAFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "not-a-dir", "x")
	_, err := Load(filepath.Join(dir, "not-a-dir"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	s := map[string]string{NCBIAPIKey: "from-secrets", NCBIEmail: "secrets@example.org"}

	var empty types.EUtilsConfig
	Apply(&empty, s)
	assert.Equal(t, "from-secrets", empty.APIKey)
	assert.Equal(t, "secrets@example.org", empty.Email)

	set := types.EUtilsConfig{APIKey: "from-flag"}
	Apply(&set, s)
	assert.Equal(t, "from-flag", set.APIKey)
	assert.Equal(t, "secrets@example.org", set.Email)
}
