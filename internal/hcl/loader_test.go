package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/bmicalc/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return root
}

func TestLoader_Load(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"a.hcl": `
measurement "alice" {
  height = "180"
  weight = "70"
}

measurement "bob" {
  height = 165.5
  weight = 92
}
`,
		"nested/b.hcl": `
measurement "carol" {
  weight = " 55 "
}
`,
		"ignored.txt": `measurement "dave" {}`,
	})

	model, err := NewLoader().Load(context.Background(), root)
	require.NoError(t, err)

	want := []*config.Measurement{
		{Name: "alice", Height: "180", Weight: "70", Source: filepath.Join(root, "a.hcl")},
		{Name: "bob", Height: "165.5", Weight: "92", Source: filepath.Join(root, "a.hcl")},
		{Name: "carol", Height: "", Weight: " 55 ", Source: filepath.Join(root, "nested", "b.hcl")},
	}
	if diff := cmp.Diff(want, model.Measurements); diff != "" {
		t.Errorf("measurements mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_SingleFileAndDedupe(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"one.hcl": `measurement "x" {
  height = "170"
  weight = "60"
}`,
	})
	file := filepath.Join(root, "one.hcl")

	model, err := NewLoader().Load(context.Background(), file, root)
	require.NoError(t, err)
	require.Len(t, model.Measurements, 1)
	assert.Equal(t, "x", model.Measurements[0].Name)
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		files     map[string]string
		path      string
		expectErr string
	}{
		{
			name:      "syntax error",
			files:     map[string]string{"bad.hcl": `measurement "a" {`},
			expectErr: "failed to parse HCL file",
		},
		{
			name:      "unknown block",
			files:     map[string]string{"bad.hcl": `person "a" {}`},
			expectErr: "failed to decode HCL file",
		},
		{
			name: "unknown attribute",
			files: map[string]string{"bad.hcl": `measurement "a" {
  age = 30
}`},
			expectErr: "failed to decode HCL file",
		},
		{
			name: "non-scalar value",
			files: map[string]string{"bad.hcl": `measurement "a" {
  height = [1, 2]
}`},
			expectErr: `measurement "a": invalid height`,
		},
		{
			name: "variable reference",
			files: map[string]string{"bad.hcl": `measurement "a" {
  weight = var.w
}`},
			expectErr: `measurement "a": invalid weight`,
		},
		{
			name: "duplicate name",
			files: map[string]string{
				"a.hcl": `measurement "same" {}`,
				"b.hcl": `measurement "same" {}`,
			},
			expectErr: `duplicate measurement "same"`,
		},
		{
			name:      "missing path",
			files:     map[string]string{},
			path:      "does-not-exist.hcl",
			expectErr: "error accessing path",
		},
		{
			name:      "wrong extension",
			files:     map[string]string{"input.txt": ""},
			path:      "input.txt",
			expectErr: "does not have the .hcl extension",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := writeFiles(t, tc.files)
			path := root
			if tc.path != "" {
				path = filepath.Join(root, tc.path)
			}

			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestConverter_Text(t *testing.T) {
	root := writeFiles(t, map[string]string{"a.hcl": `
measurement "flags" {
  height = true
  weight = null
}
`})

	model, err := NewLoader().Load(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, model.Measurements, 1)

	// Booleans become text and are rejected later by validation; null is
	// treated like an omitted attribute.
	assert.Equal(t, "true", model.Measurements[0].Height)
	assert.Equal(t, "", model.Measurements[0].Weight)
}
