package cli

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/metarecord/internal/logging"
	"github.com/aretw0/metarecord/internal/testutils"
	"github.com/aretw0/metarecord/pkg/schema"
)

const articleSchema = "id: integer\nname: string\ncategories: list\n"

func TestRunCheck(t *testing.T) {
	t.Run("Writes records in schema order", func(t *testing.T) {
		dir := testutils.WriteFiles(t, map[string]string{
			"schema.yaml": articleSchema,
			"data.json":   `[{"name": "jimmy", "categories": [10, 21, 22], "id": 102}, {"id": 7}]`,
		})

		var out bytes.Buffer
		err := RunCheck(&out, CheckOptions{
			SchemaPath: filepath.Join(dir, "schema.yaml"),
			DataPaths:  []string{filepath.Join(dir, "data.json")},
			Logger:     logging.NewNop(),
		})
		require.NoError(t, err)
		assert.Equal(t,
			`{"id":102,"name":"jimmy","categories":[10,21,22]}`+"\n"+
				`{"id":7,"name":"","categories":[]}`+"\n",
			out.String())
	})

	t.Run("Unknown fields are logged, not fatal", func(t *testing.T) {
		dir := testutils.WriteFiles(t, map[string]string{
			"schema.yaml": articleSchema,
			"data.yaml":   "id: 1\nname: a\ncategories: []\nbogus: true\n",
		})

		var out, logs bytes.Buffer
		err := RunCheck(&out, CheckOptions{
			SchemaPath: filepath.Join(dir, "schema.yaml"),
			DataPaths:  []string{filepath.Join(dir, "data.yaml")},
			Logger:     logging.NewWriter(&logs, slog.LevelInfo),
			Stats:      true,
		})
		require.NoError(t, err)
		assert.Contains(t, logs.String(), "fields: bogus are not defined in the meta.")
		assert.NotContains(t, out.String(), "bogus\":")
		assert.Contains(t, out.String(), `# metarecord_fields_discarded_total{field="bogus"} 1`)
		assert.Contains(t, out.String(), "# metarecord_records_created_total 1")
	})

	t.Run("Strict mode rejects unknown fields", func(t *testing.T) {
		dir := testutils.WriteFiles(t, map[string]string{
			"schema.yaml": articleSchema,
			"data.yaml":   "id: 1\nbogus: true\n",
		})

		err := RunCheck(&bytes.Buffer{}, CheckOptions{
			SchemaPath: filepath.Join(dir, "schema.yaml"),
			DataPaths:  []string{filepath.Join(dir, "data.yaml")},
			Strict:     true,
			Logger:     logging.NewNop(),
		})
		assert.ErrorIs(t, err, schema.ErrUndefinedField)
		assert.ErrorContains(t, err, "item 0")
	})

	t.Run("Type mismatch fails", func(t *testing.T) {
		dir := testutils.WriteFiles(t, map[string]string{
			"schema.yaml": articleSchema,
			"data.yaml":   "- id: 1\n- id: \"2\"\n",
		})

		var out bytes.Buffer
		err := RunCheck(&out, CheckOptions{
			SchemaPath: filepath.Join(dir, "schema.yaml"),
			DataPaths:  []string{filepath.Join(dir, "data.yaml")},
		})
		assert.ErrorIs(t, err, schema.ErrTypeMismatch)
		assert.ErrorContains(t, err, "item 1")
		assert.Contains(t, out.String(), `{"id":1,`)
	})

	t.Run("Nested YAML mappings with numeric keys", func(t *testing.T) {
		dir := testutils.WriteFiles(t, map[string]string{
			"schema.yaml": "id: integer\nmeta: object\n",
			"data.yaml":   "id: 1\nmeta:\n  1: one\n",
		})

		var out bytes.Buffer
		err := RunCheck(&out, CheckOptions{
			SchemaPath: filepath.Join(dir, "schema.yaml"),
			DataPaths:  []string{filepath.Join(dir, "data.yaml")},
			Logger:     logging.NewNop(),
		})
		require.NoError(t, err)
		assert.Equal(t, `{"id":1,"meta":{"1":"one"}}`+"\n", out.String())
	})

	t.Run("Bad schema", func(t *testing.T) {
		dir := testutils.WriteFiles(t, map[string]string{"schema.yaml": "id: uuid\n"})
		err := RunCheck(&bytes.Buffer{}, CheckOptions{SchemaPath: filepath.Join(dir, "schema.yaml")})
		assert.ErrorIs(t, err, schema.ErrSchema)
	})
}

func TestRunFields(t *testing.T) {
	dir := testutils.WriteFiles(t, map[string]string{"schema.yaml": "id: int\nname: string\nmeta: map\n"})

	var out bytes.Buffer
	require.NoError(t, RunFields(&out, filepath.Join(dir, "schema.yaml")))
	assert.Equal(t, "id\tinteger\nname\tstring\nmeta\tobject\n", out.String())
}
