package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/metarecord/internal/testutils"
	"github.com/aretw0/metarecord/pkg/schema"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := testutils.WriteFiles(t, map[string]string{name: content})
	return filepath.Join(dir, name)
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.json": FormatJSON,
	} {
		got, err := FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatOf("a.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadSchema(t *testing.T) {
	t.Run("YAML keeps document order", func(t *testing.T) {
		path := writeFile(t, "schema.yaml", "id: integer\nname: string\ncategories: list\n")
		s, err := LoadSchema(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name", "categories"}, s.Fields())
	})

	t.Run("JSON keeps document order", func(t *testing.T) {
		path := writeFile(t, "schema.json", `{"name": "string", "id": "int"}`)
		s, err := LoadSchema(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "id"}, s.Fields())
		k, _ := s.TypeOf("id")
		assert.Equal(t, schema.Integer, k)
	})

	t.Run("Unsupported type", func(t *testing.T) {
		path := writeFile(t, "schema.yaml", "id: blob\n")
		_, err := LoadSchema(path)
		assert.ErrorIs(t, err, schema.ErrSchema)
		assert.True(t, strings.Contains(err.Error(), "schema.yaml"))
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadSchema(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadData(t *testing.T) {
	t.Run("Single YAML mapping", func(t *testing.T) {
		path := writeFile(t, "data.yaml", "id: 102\nname: jimmy\nprice: 1.5\ncategories: [10, 21, 22]\n")
		items, err := LoadData(path)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 102, items[0]["id"])
		assert.Equal(t, 1.5, items[0]["price"])
		assert.Equal(t, []any{10, 21, 22}, items[0]["categories"])
	})

	t.Run("YAML non-string keys become strings", func(t *testing.T) {
		path := writeFile(t, "data.yaml", "1: top\nmeta:\n  1: one\n  true: yes\nrows:\n  - 2: two\n")
		items, err := LoadData(path)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "top", items[0]["1"])
		assert.Equal(t, map[string]any{"1": "one", "true": "yes"}, items[0]["meta"])
		assert.Equal(t, []any{map[string]any{"2": "two"}}, items[0]["rows"])
	})

	t.Run("JSON list with number normalization", func(t *testing.T) {
		path := writeFile(t, "data.json", `[{"id": 1, "price": 2.0, "big": 1e3, "nested": {"n": 4}}, {"id": 2}]`)
		items, err := LoadData(path)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(1), items[0]["id"])
		assert.Equal(t, 2.0, items[0]["price"])
		assert.Equal(t, 1000.0, items[0]["big"])
		assert.Equal(t, map[string]any{"n": int64(4)}, items[0]["nested"])
		assert.Equal(t, schema.Integer, schema.KindOf(items[1]["id"]))
	})

	t.Run("Scalar document is rejected", func(t *testing.T) {
		path := writeFile(t, "data.json", `42`)
		_, err := LoadData(path)
		assert.Error(t, err)
	})

	t.Run("List of scalars is rejected", func(t *testing.T) {
		path := writeFile(t, "data.yaml", "- 1\n- 2\n")
		_, err := LoadData(path)
		assert.ErrorContains(t, err, "item 0")
	})
}

func TestDecodeData_UnknownFormat(t *testing.T) {
	_, err := DecodeData(strings.NewReader("{}"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
