package layout

import (
	"github.com/wippyai/abicodec/errors"
	"github.com/wippyai/abicodec/types"
)

// ByteWidth returns the packed width of t in bytes. ok is false when the
// width depends on the value.
func ByteWidth(t types.Type) (width int, ok bool) {
	bits, ok := t.BitSize()
	if !ok {
		return 0, false
	}
	return int(bits / 8), true
}

// IsPackedLegal reports whether s can be decoded from a packed buffer.
func IsPackedLegal(s *types.Struct) bool {
	last := s.NumFields() - 1
	for i := 0; i < last; i++ {
		if s.Field(i).Type.Dynamic() {
			return false
		}
	}
	return trailingLegal(s.Field(last).Type)
}

func trailingLegal(t types.Type) bool {
	if !t.Dynamic() {
		return true
	}
	switch typ := t.(type) {
	case *types.Array:
		return !typ.Elem().Dynamic()
	case *types.Struct:
		return IsPackedLegal(typ)
	default:
		return true
	}
}

// CheckPackedArray returns an UnsupportedArrayLayout error when a has no
// declared length and its elements have no non-zero static width, leaving no
// way to find element boundaries.
func CheckPackedArray(a *types.Array) error {
	if _, fixed := a.Length(); fixed {
		return nil
	}
	if width, ok := ByteWidth(a.Elem()); ok && width > 0 {
		return nil
	}
	return errors.UnsupportedArrayLayout(errors.PhaseValidate, nil, a.String())
}
