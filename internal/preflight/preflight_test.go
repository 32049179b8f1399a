// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package preflight

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	return p
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	present := writeFile(t, dir, "tech.md")

	assert.True(t, Exists(present))
	assert.True(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "score.md")))
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	present := writeFile(t, dir, "TenderWritingAgent.md")
	absent := filepath.Join(dir, "GenerateTenderDocument.md")

	require.NoError(t, CheckFile(present))

	err := CheckFile(absent)
	require.Error(t, err)

	var missing *MissingFileError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, absent, missing.Path)
	assert.Contains(t, err.Error(), absent)
}

func TestCheckAll(t *testing.T) {
	tests := []struct {
		name    string
		present []string
		want    []string
	}{
		{name: "all present", present: []string{"tech.md", "score.md"}},
		{name: "score missing", present: []string{"tech.md"}, want: []string{"score.md"}},
		{name: "tech missing", present: []string{"score.md"}, want: []string{"tech.md"}},
		{name: "both missing", want: []string{"tech.md", "score.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, name := range tt.present {
				writeFile(t, dir, name)
			}

			got := CheckAll(filepath.Join(dir, "tech.md"), filepath.Join(dir, "score.md"))

			var want []string
			for _, name := range tt.want {
				want = append(want, filepath.Join(dir, name))
			}
			assert.Equal(t, want, got)
		})
	}
}
