package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/metarecord/internal/testutils"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "metarecord version ")
}

func TestFieldsAndCheckCommands(t *testing.T) {
	dir := testutils.WriteFiles(t, map[string]string{
		"schema.json": `{"id": "integer", "price": "float"}`,
		"data.yaml":   "id: 3\nprice: 2.5\n",
	})
	schemaPath := filepath.Join(dir, "schema.json")
	dataPath := filepath.Join(dir, "data.yaml")

	out, err := execute(t, "fields", "--schema", schemaPath)
	require.NoError(t, err)
	assert.Equal(t, "id\tinteger\nprice\tfloat\n", out)

	out, err = execute(t, "check", "--schema", schemaPath, "--log-level", "error", dataPath)
	require.NoError(t, err)
	assert.Equal(t, `{"id":3,"price":2.5}`+"\n", out)
}

func TestCheckCommand_BadLogLevel(t *testing.T) {
	_, err := execute(t, "check", "--log-level", "loud", "data.yaml")
	assert.ErrorContains(t, err, "invalid log level")
}
