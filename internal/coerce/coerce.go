package coerce

import (
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/wippyai/abicodec/errors"
)

// ToBig converts value to a non-negative arbitrary-precision integer.
// Strings are read as hex when IsHex reports true, otherwise as decimal.
// Byte slices and arrays are read big-endian.
func ToBig(value any) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		if v == nil {
			return nil, errors.InvalidValue("", nil, value, "nil big integer")
		}
		if v.Sign() < 0 {
			return nil, negative(value)
		}
		return new(big.Int).Set(v), nil
	case *uint256.Int:
		if v == nil {
			return nil, errors.InvalidValue("", nil, value, "nil uint256")
		}
		return v.ToBig(), nil
	case uint256.Int:
		return v.ToBig(), nil
	case []byte:
		return new(big.Int).SetBytes(v), nil
	case bool:
		return nil, unrecognized(value)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 {
			return nil, negative(value)
		}
		return big.NewInt(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return fromFloat(rv.Float(), value)
	case reflect.String:
		return parseString(rv.String())
	}

	if b, ok := bytesOf(rv); ok {
		return new(big.Int).SetBytes(b), nil
	}
	return nil, unrecognized(value)
}

// ToInt converts value to a uint64. Values wider than 64 bits fail with
// KindValueTooLarge.
func ToInt(value any) (uint64, error) {
	n, err := ToBig(value)
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, errors.ValueTooLarge("", nil, (n.BitLen()+7)/8, 8)
	}
	return n.Uint64(), nil
}

// ToBool passes booleans through and otherwise reports whether the integer
// value of value is non-zero. The strings "true" and "false" are accepted.
func ToBool(value any) (bool, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		switch rv.String() {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}

	n, err := ToBig(value)
	if err != nil {
		return false, err
	}
	return n.Sign() != 0, nil
}

// ToHex renders value as a lowercase 0x-prefixed hex string. Byte slices and
// arrays keep every byte; prefixed strings are validated and lowercased;
// integers are rendered as minimal hex quantities (0x0 for zero).
func ToHex(value any) (string, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		if s := rv.String(); HasHexPrefix(s) {
			if _, err := decodeHex(s); err != nil {
				return "", err
			}
			return "0x" + strings.ToLower(s[2:]), nil
		}
	}

	if b, ok := bytesOf(rv); ok {
		return hexutil.Encode(b), nil
	}

	n, err := ToBig(value)
	if err != nil {
		return "", err
	}
	return hexutil.EncodeBig(n), nil
}

// ToBytes converts value to bytes. When length is positive the result is
// left-padded to exactly length bytes; leading zero bytes are dropped if the
// input is longer, and KindValueTooLarge is returned if it still does not fit.
// Integers convert to their minimal big-endian form, so zero is empty.
func ToBytes(value any, length int) ([]byte, error) {
	b, err := rawBytes(value)
	if err != nil {
		return nil, err
	}
	if length <= 0 {
		return b, nil
	}

	if len(b) > length {
		trimmed := trimLeadingZeros(b)
		if len(trimmed) > length {
			return nil, errors.ValueTooLarge("", nil, len(b), length)
		}
		b = trimmed
	}
	return common.LeftPadBytes(b, length), nil
}

func rawBytes(value any) ([]byte, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		if s := rv.String(); HasHexPrefix(s) {
			return decodeHex(s)
		}
	}

	if b, ok := bytesOf(rv); ok {
		return b, nil
	}

	n, err := ToBig(value)
	if err != nil {
		return nil, err
	}
	return n.Bytes(), nil
}

func parseString(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)

	base, digits := 10, s
	if IsHex(s) {
		base = 16
		if HasHexPrefix(digits) {
			digits = digits[2:]
		}
	}
	if digits == "" {
		return new(big.Int), nil
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, errors.InvalidValue("", nil, s, "invalid integer string \""+s+"\"")
	}
	if n.Sign() < 0 {
		return nil, negative(s)
	}
	return n, nil
}

func fromFloat(f float64, value any) (*big.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, errors.InvalidValue("", nil, value, "number is not an integer")
	}
	if f < 0 {
		return nil, negative(value)
	}
	n, _ := new(big.Float).SetFloat64(f).Int(nil)
	return n, nil
}

func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}

func negative(value any) *errors.Error {
	return errors.InvalidValue("", nil, value, "negative value for unsigned type")
}
