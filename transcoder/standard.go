package transcoder

import (
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/wippyai/abicodec/errors"
	"github.com/wippyai/abicodec/internal/coerce"
	"github.com/wippyai/abicodec/types"
)

// toStandard builds the Go value the library packs for st. Struct fields of
// generated tuple types follow component order.
func (e *Encoder) toStandard(st abi.Type, t types.Type, v any, path []string, depth int) (reflect.Value, error) {
	if err := checkDepth(errors.PhaseEncode, path, depth, e.opts.MaxDepth); err != nil {
		return reflect.Value{}, err
	}

	switch typ := t.(type) {
	case *types.Elementary:
		rv, err := standardScalar(st, typ, v)
		if err != nil {
			return reflect.Value{}, at(err, errors.PhaseEncode, path, t)
		}
		return rv, nil

	case *types.Enum:
		idx, err := enumIndex(typ, v)
		if err != nil {
			return reflect.Value{}, at(err, errors.PhaseEncode, path, t)
		}
		return standardUint(st, new(big.Int).SetUint64(idx)), nil

	case *types.Array:
		seq, ok := sequence(v)
		if !ok {
			return reflect.Value{}, errors.TypeMismatch(errors.PhaseEncode, path, typeName(v), t.String())
		}
		var out reflect.Value
		if length, fixed := typ.Length(); fixed {
			if seq.Len() != int(length) {
				return reflect.Value{}, errors.InvalidLength(errors.PhaseEncode, path, seq.Len(), int(length))
			}
			out = reflect.New(st.GetType()).Elem()
		} else {
			out = reflect.MakeSlice(st.GetType(), seq.Len(), seq.Len())
		}
		for i := 0; i < seq.Len(); i++ {
			item, err := e.toStandard(*st.Elem, typ.Elem(), seq.Index(i).Interface(), indexPath(path, i), depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(item)
		}
		return out, nil

	case *types.Struct:
		m, ok := fieldMap(v)
		if !ok {
			return reflect.Value{}, errors.TypeMismatch(errors.PhaseEncode, path, typeName(v), t.String())
		}
		out := reflect.New(st.GetType()).Elem()
		for i, f := range typ.Fields() {
			fv, ok := m[f.Name]
			if !ok {
				return reflect.Value{}, errors.FieldMissing(errors.PhaseEncode, path, f.Name)
			}
			item, err := e.toStandard(*st.TupleElems[i], f.Type, fv, fieldPath(path, f.Name), depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Field(i).Set(item)
		}
		return out, nil

	default:
		return reflect.Value{}, errors.Unsupported(errors.PhaseEncode, "descriptor "+typeName(t))
	}
}

func standardScalar(st abi.Type, e *types.Elementary, v any) (reflect.Value, error) {
	switch e.Kind() {
	case types.KindBool:
		b, err := coerce.ToBool(v)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(b), nil
	case types.KindUint:
		bits, _ := e.BitSize()
		n, err := toUint(v, bits)
		if err != nil {
			return reflect.Value{}, err
		}
		return standardUint(st, n), nil
	case types.KindAddress:
		b, err := coerce.ToBytes(v, common.AddressLength)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(common.BytesToAddress(b)), nil
	case types.KindByte, types.KindBytes:
		b, err := coerce.ToBytes(v, byteLength(e))
		if err != nil {
			return reflect.Value{}, err
		}
		if e.Dynamic() {
			return reflect.ValueOf(b), nil
		}
		out := reflect.New(st.GetType()).Elem()
		reflect.Copy(out, reflect.ValueOf(b))
		return out, nil
	default:
		return reflect.Value{}, errors.Unsupported("", "elementary kind "+e.Kind().String())
	}
}

// standardUint returns n as the native unsigned type the library uses for
// widths of 8, 16, 32 and 64 bits, or as *big.Int otherwise.
func standardUint(st abi.Type, n *big.Int) reflect.Value {
	rt := st.GetType()
	if rt.Kind() == reflect.Ptr {
		return reflect.ValueOf(n)
	}
	out := reflect.New(rt).Elem()
	out.SetUint(n.Uint64())
	return out
}

// fromStandard reshapes an unpacked value into plain form: arrays become
// []any and tuples become maps keyed by field name. Scalars are returned
// as unpacked and normalised by the plain decoder.
func (d *Decoder) fromStandard(t types.Type, rv reflect.Value, path []string, depth int) (any, error) {
	if err := checkDepth(errors.PhaseDecode, path, depth, d.opts.MaxDepth); err != nil {
		return nil, err
	}

	switch typ := t.(type) {
	case *types.Elementary, *types.Enum:
		return rv.Interface(), nil

	case *types.Array:
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, errors.TypeMismatch(errors.PhaseDecode, path, rv.Type().String(), t.String())
		}
		out := make([]any, rv.Len())
		for i := range out {
			item, err := d.fromStandard(typ.Elem(), rv.Index(i), indexPath(path, i), depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = item
		}
		return out, nil

	case *types.Struct:
		if rv.Kind() != reflect.Struct || rv.NumField() != typ.NumFields() {
			return nil, errors.TypeMismatch(errors.PhaseDecode, path, rv.Type().String(), t.String())
		}
		out := make(map[string]any, typ.NumFields())
		for i, f := range typ.Fields() {
			item, err := d.fromStandard(f.Type, rv.Field(i), fieldPath(path, f.Name), depth+1)
			if err != nil {
				return nil, err
			}
			out[f.Name] = item
		}
		return out, nil

	default:
		return nil, errors.Unsupported(errors.PhaseDecode, "descriptor "+typeName(t))
	}
}

// standardInput accepts raw bytes or a hex string with or without prefix.
func standardInput(input any) ([]byte, error) {
	switch in := input.(type) {
	case []byte:
		return in, nil
	case string:
		s := in
		if !coerce.HasHexPrefix(s) {
			s = "0x" + s
		}
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidValue).
				GoType(typeName(input)).
				Value(in).
				Cause(err).
				Detail("invalid hex input").
				Build()
		}
		return b, nil
	default:
		return nil, errors.UnrecognizedType(errors.PhaseDecode, nil, typeName(input))
	}
}
