package transcoder

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/abicodec/errors"
	"github.com/wippyai/abicodec/types"
)

var (
	u8       = types.Must(types.NewUint(8))
	u16      = types.Must(types.NewUint(16))
	u24      = types.Must(types.NewUint(24))
	u32      = types.Must(types.NewUint(32))
	u64      = types.Must(types.NewUint(64))
	u128     = types.Must(types.NewUint(128))
	u256     = types.Must(types.NewUint(256))
	b4       = types.Must(types.NewFixedBytes(4))
	addr     = types.NewAddress()
	boolean  = types.NewBool()
	oneByte  = types.NewByte()
	dynBytes = types.NewDynamicBytes()
	abc      = types.Must(types.NewEnum("Letter", "A", "B", "C"))
	side     = types.Must(types.NewEnum("Side", "Buy", "Sell"))

	item = types.Must(types.NewStruct("Item",
		types.Field{Name: "id", Type: u64},
		types.Field{Name: "ok", Type: boolean},
	))
	order = types.Must(types.NewStruct("Order",
		types.Field{Name: "maker", Type: addr},
		types.Field{Name: "amount", Type: u128},
		types.Field{Name: "side", Type: side},
		types.Field{Name: "flag", Type: oneByte},
		types.Field{Name: "tag", Type: b4},
		types.Field{Name: "ids", Type: types.Must(types.NewArray(u32, 2))},
		types.Field{Name: "data", Type: dynBytes},
		types.Field{Name: "items", Type: types.Must(types.NewDynamicArray(item))},
	))
)

const (
	makerMixed = "0xAAbbCCddEEff00112233445566778899aABbCcDd"
	makerLower = "0xaabbccddeeff00112233445566778899aabbccdd"
)

func bigHex(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 0)
	require.True(t, ok, "bad test integer %q", s)
	return n
}

// orderValue returns a typed Order in canonical form.
func orderValue(t *testing.T) map[string]any {
	return map[string]any{
		"maker":  makerLower,
		"amount": bigHex(t, "0xde0b6b3a7640000"),
		"side":   uint64(1),
		"flag":   "0x7f",
		"tag":    "0xcafebabe",
		"ids":    []any{uint64(7), uint64(4294967295)},
		"data":   "0x0102030405",
		"items": []any{
			map[string]any{"id": big.NewInt(1), "ok": true},
			map[string]any{"id": bigHex(t, "0xffffffffffffffff"), "ok": false},
		},
	}
}

// assertSameValue compares typed values through their plain form, which is
// insensitive to how big integers were built.
func assertSameValue(t *testing.T, typ types.Type, want, got any) {
	t.Helper()
	wantPlain, err := EncodePlain(typ, want)
	require.NoError(t, err)
	gotPlain, err := EncodePlain(typ, got)
	require.NoError(t, err)
	assert.Equal(t, wantPlain, gotPlain)
}

func assertKind(t *testing.T, err error, sentinel *errors.Error, path string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	if path != "" {
		var e *errors.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, path, errors.JoinPath(e.Path))
	}
}
