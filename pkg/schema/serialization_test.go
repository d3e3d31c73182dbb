package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSchemaJSON(t *testing.T) {
	s := MustNew(F("zeta", Integer), F("alpha", String), F("tags", List))

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"integer","alpha":"string","tags":"list"}`, string(data))

	var decoded Schema
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s.Fields(), decoded.Fields())
}

func TestSchemaJSON_Errors(t *testing.T) {
	tests := map[string]string{
		"not an object":    `["id"]`,
		"non string type":  `{"id": 1}`,
		"unsupported type": `{"id": "blob"}`,
		"empty":            `{}`,
		"duplicate":        `{"id": "integer", "id": "string"}`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			var s Schema
			assert.Error(t, json.Unmarshal([]byte(input), &s))
		})
	}
}

func TestSchemaYAML(t *testing.T) {
	input := `
id: integer
name: string
categories: list
meta: map
`
	var s Schema
	require.NoError(t, yaml.Unmarshal([]byte(input), &s))
	assert.Equal(t, []string{"id", "name", "categories", "meta"}, s.Fields())

	k, _ := s.TypeOf("meta")
	assert.Equal(t, Object, k)

	out, err := yaml.Marshal(&s)
	require.NoError(t, err)
	assert.Equal(t, "id: integer\nname: string\ncategories: list\nmeta: object\n", string(out))
}

func TestSchemaYAML_Errors(t *testing.T) {
	var s Schema

	err := yaml.Unmarshal([]byte("id: blob\n"), &s)
	assert.ErrorIs(t, err, ErrSchema)

	err = yaml.Unmarshal([]byte("- id\n"), &s)
	assert.Error(t, err)

	err = yaml.Unmarshal([]byte("id: [integer]\n"), &s)
	assert.Error(t, err)
}
