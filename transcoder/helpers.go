package transcoder

import (
	"math/big"
	"reflect"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/wippyai/abicodec/errors"
	"github.com/wippyai/abicodec/internal/coerce"
	"github.com/wippyai/abicodec/types"
)

// Uints narrower than this many bits are represented as uint64; wider ones
// as *big.Int in typed form and hex strings in plain form.
const plainIntBits = 53

var typeName = coerce.TypeName

func fieldPath(path []string, name string) []string {
	return append(append([]string{}, path...), name)
}

func indexPath(path []string, i int) []string {
	return append(append([]string{}, path...), "["+strconv.Itoa(i)+"]")
}

// at completes an error raised by a helper that knows neither the phase nor
// the position of the value being converted.
func at(err error, phase errors.Phase, path []string, t types.Type) error {
	var e *errors.Error
	if !errors.As(err, &e) {
		return err
	}
	if e.Phase == "" {
		e.Phase = phase
	}
	if len(e.Path) == 0 && len(path) > 0 {
		e.Path = append([]string{}, path...)
	}
	if e.AbiType == "" && t != nil {
		e.AbiType = t.String()
	}
	return e
}

func checkDepth(phase errors.Phase, path []string, depth, limit int) error {
	if depth > limit {
		return errors.Overflow(phase, path, depth, "descriptor nesting exceeds max depth "+strconv.Itoa(limit))
	}
	return nil
}

func checkInputSize(phase errors.Phase, size, limit int) error {
	if size > limit {
		return errors.New(phase, errors.KindOverflow).
			Value(size).
			Detail("input of %d bytes exceeds limit of %d", size, limit).
			Build()
	}
	return nil
}

// sequence returns v as an indexable value when it is a slice or array.
func sequence(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

// fieldMap returns v as a string-keyed map.
func fieldMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// toUint converts v to an integer that fits in bits.
func toUint(v any, bits uint) (*big.Int, error) {
	n, err := coerce.ToBig(v)
	if err != nil {
		return nil, err
	}
	if uint(n.BitLen()) > bits {
		return nil, errors.ValueTooLarge("", nil, (n.BitLen()+7)/8, int(bits/8))
	}
	return n, nil
}

// typedUint returns the typed form of an integer of the given width.
func typedUint(n *big.Int, bits uint) any {
	if bits < plainIntBits {
		return n.Uint64()
	}
	return n
}

// byteLength returns the fixed byte length of a bytes-like scalar, or 0 when
// its length follows the value.
func byteLength(e *types.Elementary) int {
	bits, ok := e.BitSize()
	if !ok {
		return 0
	}
	return int(bits / 8)
}

// scalar converts v to the canonical typed form of e.
func scalar(e *types.Elementary, v any) (any, error) {
	switch e.Kind() {
	case types.KindBool:
		return coerce.ToBool(v)
	case types.KindUint:
		bits, _ := e.BitSize()
		n, err := toUint(v, bits)
		if err != nil {
			return nil, err
		}
		return typedUint(n, bits), nil
	case types.KindByte, types.KindBytes, types.KindAddress:
		b, err := coerce.ToBytes(v, byteLength(e))
		if err != nil {
			return nil, err
		}
		return hexutil.Encode(b), nil
	default:
		return nil, errors.Unsupported("", "elementary kind "+e.Kind().String())
	}
}

// enumIndex converts v to a variant index of en.
func enumIndex(en *types.Enum, v any) (uint64, error) {
	idx, err := coerce.ToInt(v)
	if err != nil {
		return 0, err
	}
	if idx >= uint64(en.NumVariants()) {
		return 0, errors.InvalidEnum("", nil, idx, en.Name(), en.NumVariants())
	}
	return idx, nil
}
