package coerce

import (
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/wippyai/abicodec/errors"
)

// TypeName returns "nil" for nil values, avoiding reflect.TypeOf(nil) panic.
func TypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}

// HasHexPrefix reports whether s starts with 0x or 0X.
func HasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// IsHex reports whether s is read as hex rather than decimal: it carries a
// 0x prefix or contains a hex letter.
func IsHex(s string) bool {
	if HasHexPrefix(s) {
		return true
	}
	return strings.ContainsAny(s, "abcdefABCDEF")
}

// decodeHex decodes a hex string with or without prefix. Odd-length input is
// read as a quantity with an implied leading zero nibble.
func decodeHex(s string) ([]byte, error) {
	digits := s
	if HasHexPrefix(digits) {
		digits = digits[2:]
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	b, err := hexutil.Decode("0x" + digits)
	if err != nil {
		return nil, errors.New("", errors.KindInvalidValue).
			GoType("string").
			Value(s).
			Cause(err).
			Detail("invalid hex string %q", s).
			Build()
	}
	return b, nil
}

// bytesOf returns the contents of a byte slice or byte array, including named
// types such as common.Address or hexutil.Bytes.
func bytesOf(rv reflect.Value) ([]byte, bool) {
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			return nil, false
		}
		return append([]byte{}, rv.Bytes()...), true
	case reflect.Array:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			return nil, false
		}
		out := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(out), rv)
		return out, true
	default:
		return nil, false
	}
}

func unrecognized(value any) *errors.Error {
	return errors.UnrecognizedType("", nil, TypeName(value))
}
