package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/abicodec/errors"
)

const orderJSON = `{
  "meta": "struct",
  "name": "Order",
  "fields": [
    {"name": "maker", "type": {"meta": "elementary", "type": "address"}},
    {"name": "amount", "type": {"meta": "elementary", "type": "uint", "size": 128}},
    {"name": "side", "type": {"meta": "enum", "name": "Side", "fields": ["Buy", "Sell"]}},
    {"name": "ids", "type": {"meta": "array", "baseType": {"meta": "elementary", "type": "uint", "size": 32}, "length": 2}},
    {"name": "data", "type": {"meta": "elementary", "type": "bytes", "dynamic": true}}
  ]
}`

const orderYAML = `
meta: struct
name: Order
fields:
  - name: maker
    type: {meta: elementary, type: address}
  - name: amount
    type: {meta: elementary, type: uint, size: 128}
  - name: side
    type:
      meta: enum
      name: Side
      fields: [Buy, Sell]
  - name: ids
    type:
      meta: array
      length: 2
      baseType: {meta: elementary, type: uint, size: 32}
  - name: data
    type: {meta: elementary, type: bytes, dynamic: true}
`

func checkOrder(t *testing.T, typ Type) {
	t.Helper()

	s, ok := typ.(*Struct)
	require.True(t, ok, "expected *Struct, got %T", typ)
	assert.Equal(t, "Order", s.Name())
	require.Equal(t, 5, s.NumFields())
	assert.True(t, s.Dynamic())

	assert.Equal(t, "address", s.Field(0).Type.String())
	assert.Equal(t, "uint128", s.Field(1).Type.String())

	side, ok := s.Field(2).Type.(*Enum)
	require.True(t, ok)
	assert.Equal(t, []string{"Buy", "Sell"}, side.Variants())
	assert.Equal(t, "uint8", side.String())

	assert.Equal(t, "uint32[2]", s.Field(3).Type.String())
	assert.Equal(t, "bytes", s.Field(4).Type.String())
	assert.True(t, s.Field(4).Type.Dynamic())
}

func TestFromJSON(t *testing.T) {
	typ, err := FromJSON([]byte(orderJSON))
	require.NoError(t, err)
	checkOrder(t, typ)
}

func TestFromYAML(t *testing.T) {
	typ, err := FromYAML([]byte(orderYAML))
	require.NoError(t, err)
	checkOrder(t, typ)
}

func TestToJSONRoundTrip(t *testing.T) {
	typ, err := FromJSON([]byte(orderJSON))
	require.NoError(t, err)

	data, err := ToJSON(typ)
	require.NoError(t, err)

	again, err := FromJSON(data)
	require.NoError(t, err)
	checkOrder(t, again)
	assert.Equal(t, ToDef(typ), ToDef(again))
}

func TestFromJSONDefaults(t *testing.T) {
	typ, err := FromJSON([]byte(`{"meta": "elementary", "type": "uint"}`))
	require.NoError(t, err)
	assert.Equal(t, "uint256", typ.String())

	typ, err = FromJSON([]byte(`{"meta": "elementary", "type": "bytes", "size": 64}`))
	require.NoError(t, err)
	assert.Equal(t, "bytes8", typ.String())

	typ, err = FromJSON([]byte(`{"meta": "array", "baseType": {"meta": "elementary", "type": "bool"}}`))
	require.NoError(t, err)
	assert.Equal(t, "bool[]", typ.String())
}

func TestFromJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
	}{
		{"malformed", `{"meta":`, ""},
		{"unknown meta", `{"meta": "union"}`, ""},
		{"unknown elementary", `{"meta": "elementary", "type": "int"}`, ""},
		{"bad uint size", `{"meta": "elementary", "type": "uint", "size": 12}`, ""},
		{"fractional bytes", `{"meta": "elementary", "type": "bytes", "size": 12}`, ""},
		{"array without base", `{"meta": "array"}`, ""},
		{"dynamic conflict", `{"meta": "elementary", "type": "uint", "size": 8, "dynamic": true}`, ""},
		{"size conflict", `{"meta": "array", "length": 2, "size": 8, "baseType": {"meta": "elementary", "type": "bool"}}`, ""},
		{"enum fields not names", `{"meta": "enum", "name": "E", "fields": [1, 2]}`, ""},
		{
			"nested field error",
			`{"meta": "struct", "name": "S", "fields": [{"name": "a", "type": {"meta": "elementary", "type": "uint", "size": 3}}]}`,
			"a",
		},
		{"field without type", `{"meta": "struct", "name": "S", "fields": [{"name": "a"}]}`, "a"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromJSON([]byte(tc.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidDescriptor)

			if tc.path != "" {
				var e *errors.Error
				require.ErrorAs(t, err, &e)
				assert.Equal(t, tc.path, errors.JoinPath(e.Path))
			}
		})
	}
}

func TestFromYAMLError(t *testing.T) {
	_, err := FromYAML([]byte("meta: [unclosed"))
	assert.ErrorIs(t, err, errors.ErrInvalidDescriptor)
}
