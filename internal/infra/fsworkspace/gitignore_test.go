package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureGitignore(t *testing.T) {
	cases := []struct {
		name     string
		existing *string
		want     string
	}{
		{
			name: "creates file",
			want: "# aoc\ninputs/\nruns/\n.aoc/\n",
		},
		{
			name:     "appends missing entries under existing header",
			existing: ptr("node_modules/\n# aoc\nruns/"),
			want:     "node_modules/\n# aoc\nruns/\n\ninputs/\n.aoc/\n",
		},
		{
			name:     "adds header when absent",
			existing: ptr("bin/\n"),
			want:     "bin/\n\n# aoc\ninputs/\nruns/\n.aoc/\n",
		},
		{
			name:     "slash variants count as present",
			existing: ptr("/inputs\nruns\n.aoc/\n"),
			want:     "/inputs\nruns\n.aoc/\n",
		},
		{
			name:     "commented entries do not count",
			existing: ptr("#inputs/\nruns/\n.aoc/\n"),
			want:     "#inputs/\nruns/\n.aoc/\n\n# aoc\ninputs/\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			path := filepath.Join(root, ".gitignore")
			if tc.existing != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tc.existing), 0o644))
			}

			require.NoError(t, ensureGitignore(root))
			b, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(b))

			// A second pass never changes the file.
			require.NoError(t, ensureGitignore(root))
			again, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, string(b), string(again))
		})
	}
}

func TestIgnoreKey(t *testing.T) {
	for _, in := range []string{"inputs", "/inputs", "inputs/", "  /inputs/  "} {
		assert.Equal(t, "inputs", ignoreKey(in), in)
	}
	assert.True(t, strings.HasPrefix(ignoreKey("# aoc"), "#"))
}

func ptr(s string) *string { return &s }
