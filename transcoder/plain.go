package transcoder

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/wippyai/abicodec/errors"
	"github.com/wippyai/abicodec/types"
)

func (e *Encoder) encodePlain(t types.Type, v any, path []string, depth int) (any, error) {
	if err := checkDepth(errors.PhaseEncode, path, depth, e.opts.MaxDepth); err != nil {
		return nil, err
	}

	switch typ := t.(type) {
	case *types.Elementary:
		out, err := scalar(typ, v)
		if err != nil {
			return nil, at(err, errors.PhaseEncode, path, t)
		}
		if n, ok := out.(*big.Int); ok {
			return hexutil.EncodeBig(n), nil
		}
		return out, nil

	case *types.Enum:
		idx, err := enumIndex(typ, v)
		if err != nil {
			return nil, at(err, errors.PhaseEncode, path, t)
		}
		return idx, nil

	case *types.Array:
		seq, ok := sequence(v)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, typeName(v), t.String())
		}
		if length, fixed := typ.Length(); fixed && seq.Len() != int(length) {
			return nil, errors.InvalidLength(errors.PhaseEncode, path, seq.Len(), int(length))
		}
		out := make([]any, seq.Len())
		for i := range out {
			item, err := e.encodePlain(typ.Elem(), seq.Index(i).Interface(), indexPath(path, i), depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = item
		}
		return out, nil

	case *types.Struct:
		m, ok := fieldMap(v)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, typeName(v), t.String())
		}
		out := make(map[string]any, typ.NumFields())
		for _, f := range typ.Fields() {
			fv, ok := m[f.Name]
			if !ok {
				return nil, errors.FieldMissing(errors.PhaseEncode, path, f.Name)
			}
			item, err := e.encodePlain(f.Type, fv, fieldPath(path, f.Name), depth+1)
			if err != nil {
				return nil, err
			}
			out[f.Name] = item
		}
		return out, nil

	default:
		return nil, errors.Unsupported(errors.PhaseEncode, "descriptor "+typeName(t))
	}
}

func (d *Decoder) decodePlain(t types.Type, v any, path []string, depth int) (any, error) {
	if err := checkDepth(errors.PhaseDecode, path, depth, d.opts.MaxDepth); err != nil {
		return nil, err
	}

	switch typ := t.(type) {
	case *types.Elementary:
		out, err := scalar(typ, v)
		if err != nil {
			return nil, at(err, errors.PhaseDecode, path, t)
		}
		return out, nil

	case *types.Enum:
		idx, err := enumIndex(typ, v)
		if err != nil {
			return nil, at(err, errors.PhaseDecode, path, t)
		}
		return idx, nil

	case *types.Array:
		seq, ok := sequence(v)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseDecode, path, typeName(v), t.String())
		}
		if length, fixed := typ.Length(); fixed && seq.Len() != int(length) {
			return nil, errors.InvalidLength(errors.PhaseDecode, path, seq.Len(), int(length))
		}
		out := make([]any, seq.Len())
		for i := range out {
			item, err := d.decodePlain(typ.Elem(), seq.Index(i).Interface(), indexPath(path, i), depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = item
		}
		return out, nil

	case *types.Struct:
		if m, ok := fieldMap(v); ok {
			return d.decodeKeyed(typ, m, path, depth)
		}
		if seq, ok := sequence(v); ok {
			items := make([]any, seq.Len())
			for i := range items {
				items[i] = seq.Index(i).Interface()
			}
			return d.decodePositional(typ, items, path, depth)
		}
		return nil, errors.TypeMismatch(errors.PhaseDecode, path, typeName(v), t.String())

	default:
		return nil, errors.Unsupported(errors.PhaseDecode, "descriptor "+typeName(t))
	}
}

// decodeKeyed matches struct fields by name.
func (d *Decoder) decodeKeyed(s *types.Struct, m map[string]any, path []string, depth int) (map[string]any, error) {
	out := make(map[string]any, s.NumFields())
	for _, f := range s.Fields() {
		fv, ok := m[f.Name]
		if !ok {
			return nil, errors.FieldMissing(errors.PhaseDecode, path, f.Name)
		}
		item, err := d.decodePlain(f.Type, fv, fieldPath(path, f.Name), depth+1)
		if err != nil {
			return nil, err
		}
		out[f.Name] = item
	}
	return out, nil
}

// decodePositional matches struct fields by index.
func (d *Decoder) decodePositional(s *types.Struct, items []any, path []string, depth int) (map[string]any, error) {
	if len(items) != s.NumFields() {
		return nil, errors.InvalidLength(errors.PhaseDecode, path, len(items), s.NumFields())
	}
	out := make(map[string]any, s.NumFields())
	for i, f := range s.Fields() {
		item, err := d.decodePlain(f.Type, items[i], fieldPath(path, f.Name), depth+1)
		if err != nil {
			return nil, err
		}
		out[f.Name] = item
	}
	return out, nil
}
