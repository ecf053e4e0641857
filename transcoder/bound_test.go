package transcoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/abicodec/errors"
	"github.com/wippyai/abicodec/types"
)

func TestBoundJSON(t *testing.T) {
	b := Bind(order)
	assert.Same(t, order, b.Type())

	v := orderValue(t)
	data, err := b.ToJSON(v)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"amount":"0xde0b6b3a7640000"`)
	assert.Contains(t, string(data), `"ids":[7,4294967295]`)

	got, err := b.FromJSON(data)
	require.NoError(t, err)
	assertSameValue(t, order, v, got)

	_, err = b.FromJSON([]byte(`{"maker":`))
	assertKind(t, err, errors.ErrInvalidValue, "")
}

func TestBoundForms(t *testing.T) {
	s := types.Must(types.NewStruct("Pair",
		types.Field{Name: "a", Type: u32},
		types.Field{Name: "b", Type: dynBytes},
	))
	b := Bind(s)
	v := map[string]any{"a": uint64(9), "b": "0xabcdef"}

	packed, err := b.ToPacked(v)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 9, 0xab, 0xcd, 0xef}, packed)
	got, err := b.FromPacked(packed)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	std, err := b.ToStandard(v)
	require.NoError(t, err)
	got, err = b.FromStandard(std)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	plain, err := b.ToPlain(v)
	require.NoError(t, err)
	got, err = b.FromPlain(plain)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestBindWithOptions(t *testing.T) {
	b := BindWithOptions(dynBytes, Options{MaxInputSize: 2})

	_, err := b.FromPacked([]byte{1, 2, 3})
	assertKind(t, err, errors.ErrOverflow, "")

	_, err = b.FromJSON([]byte(`"0x01"`))
	assertKind(t, err, errors.ErrOverflow, "")
}
