package transcoder

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/wippyai/abicodec/errors"
	"github.com/wippyai/abicodec/internal/coerce"
	"github.com/wippyai/abicodec/internal/layout"
	"github.com/wippyai/abicodec/types"
)

func (e *Encoder) encodePacked(t types.Type, v any, buf *[]byte, path []string, depth int) error {
	if err := checkDepth(errors.PhaseEncode, path, depth, e.opts.MaxDepth); err != nil {
		return err
	}

	switch typ := t.(type) {
	case *types.Elementary:
		b, err := packScalar(typ, v)
		if err != nil {
			return at(err, errors.PhaseEncode, path, t)
		}
		*buf = append(*buf, b...)
		return nil

	case *types.Enum:
		idx, err := enumIndex(typ, v)
		if err != nil {
			return at(err, errors.PhaseEncode, path, t)
		}
		bits, _ := typ.BitSize()
		*buf = append(*buf, uint256.NewInt(idx).PaddedBytes(int(bits/8))...)
		return nil

	case *types.Array:
		seq, ok := sequence(v)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, typeName(v), t.String())
		}
		if length, fixed := typ.Length(); fixed && seq.Len() != int(length) {
			return errors.InvalidLength(errors.PhaseEncode, path, seq.Len(), int(length))
		}
		for i := 0; i < seq.Len(); i++ {
			if err := e.encodePacked(typ.Elem(), seq.Index(i).Interface(), buf, indexPath(path, i), depth+1); err != nil {
				return err
			}
		}
		return nil

	case *types.Struct:
		m, ok := fieldMap(v)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, typeName(v), t.String())
		}
		for _, f := range typ.Fields() {
			fv, ok := m[f.Name]
			if !ok {
				return errors.FieldMissing(errors.PhaseEncode, path, f.Name)
			}
			if err := e.encodePacked(f.Type, fv, buf, fieldPath(path, f.Name), depth+1); err != nil {
				return err
			}
		}
		return nil

	default:
		return errors.Unsupported(errors.PhaseEncode, "descriptor "+typeName(t))
	}
}

func packScalar(e *types.Elementary, v any) ([]byte, error) {
	switch e.Kind() {
	case types.KindBool:
		b, err := coerce.ToBool(v)
		if err != nil {
			return nil, err
		}
		if b {
			return []byte{1}, nil
		}
		return []byte{0}, nil
	case types.KindUint:
		bits, _ := e.BitSize()
		n, err := toUint(v, bits)
		if err != nil {
			return nil, err
		}
		u, _ := uint256.FromBig(n)
		return u.PaddedBytes(int(bits / 8)), nil
	case types.KindByte, types.KindBytes, types.KindAddress:
		return coerce.ToBytes(v, byteLength(e))
	default:
		return nil, errors.Unsupported("", "elementary kind "+e.Kind().String())
	}
}

func (d *Decoder) decodePacked(t types.Type, buf []byte, path []string, depth int) (any, error) {
	if err := checkDepth(errors.PhaseDecode, path, depth, d.opts.MaxDepth); err != nil {
		return nil, err
	}
	if width, ok := layout.ByteWidth(t); ok && len(buf) != width {
		return nil, errors.InvalidLength(errors.PhaseDecode, path, len(buf), width)
	}

	switch typ := t.(type) {
	case *types.Elementary:
		switch typ.Kind() {
		case types.KindBool:
			b, err := coerce.ToBool(buf)
			if err != nil {
				return nil, at(err, errors.PhaseDecode, path, t)
			}
			return b, nil
		case types.KindUint:
			bits, _ := typ.BitSize()
			return typedUint(new(big.Int).SetBytes(buf), bits), nil
		default:
			return hexutil.Encode(buf), nil
		}

	case *types.Enum:
		idx, err := enumIndex(typ, buf)
		if err != nil {
			return nil, at(err, errors.PhaseDecode, path, t)
		}
		return idx, nil

	case *types.Array:
		return d.decodePackedArray(typ, buf, path, depth)

	case *types.Struct:
		return d.decodePackedStruct(typ, buf, path, depth)

	default:
		return nil, errors.Unsupported(errors.PhaseDecode, "descriptor "+typeName(t))
	}
}

func (d *Decoder) decodePackedArray(a *types.Array, buf []byte, path []string, depth int) ([]any, error) {
	if err := layout.CheckPackedArray(a); err != nil {
		Logger().Debug("packed decode rejected array layout",
			zap.String("type", a.String()),
			zap.String("path", errors.JoinPath(path)))
		return nil, at(err, errors.PhaseDecode, path, a)
	}

	length, fixed := a.Length()
	width, static := layout.ByteWidth(a.Elem())
	if !static {
		// Fixed length is guaranteed here; elements share the buffer evenly.
		if len(buf)%int(length) != 0 {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidLength).
				Path(path...).
				AbiType(a.String()).
				Value(len(buf)).
				Detail("buffer of %d bytes does not split into %d elements", len(buf), length).
				Build()
		}
		width = len(buf) / int(length)
	}

	count := int(length)
	if !fixed {
		if len(buf)%width != 0 {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidLength).
				Path(path...).
				AbiType(a.String()).
				Value(len(buf)).
				Detail("buffer of %d bytes is not a multiple of element width %d", len(buf), width).
				Build()
		}
		count = len(buf) / width
	}
	if count > d.opts.MaxInputSize {
		return nil, errors.New(errors.PhaseDecode, errors.KindOverflow).
			Path(path...).
			AbiType(a.String()).
			Value(count).
			Detail("array of %d elements exceeds input limit of %d", count, d.opts.MaxInputSize).
			Build()
	}

	out := make([]any, count)
	offset := 0
	for i := range out {
		item, err := d.decodePacked(a.Elem(), buf[offset:offset+width], indexPath(path, i), depth+1)
		if err != nil {
			return nil, err
		}
		out[i] = item
		offset += width
	}
	return out, nil
}

func (d *Decoder) decodePackedStruct(s *types.Struct, buf []byte, path []string, depth int) (map[string]any, error) {
	if !layout.IsPackedLegal(s) {
		Logger().Debug("packed decode rejected struct layout",
			zap.String("struct", s.Name()),
			zap.String("path", errors.JoinPath(path)))
		return nil, errors.UnsupportedStructLayout(errors.PhaseDecode, path, s.Name())
	}

	out := make(map[string]any, s.NumFields())
	offset := 0
	for _, f := range s.Fields() {
		end := len(buf)
		if width, ok := layout.ByteWidth(f.Type); ok {
			end = offset + width
			if end > len(buf) {
				return nil, errors.InvalidLength(errors.PhaseDecode, fieldPath(path, f.Name), len(buf)-offset, width)
			}
		}
		item, err := d.decodePacked(f.Type, buf[offset:end], fieldPath(path, f.Name), depth+1)
		if err != nil {
			return nil, err
		}
		out[f.Name] = item
		offset = end
	}
	return out, nil
}
