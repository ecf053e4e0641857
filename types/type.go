package types

import (
	"fmt"
	"math/bits"

	"github.com/wippyai/abicodec/errors"
)

// Type is an ABI type descriptor. The set of implementations is closed:
// *Elementary, *Array, *Enum and *Struct.
type Type interface {
	// Dynamic reports whether the encoded length depends on the value.
	Dynamic() bool
	// BitSize returns the static encoded size in bits. ok is false for
	// dynamic types.
	BitSize() (size uint, ok bool)
	// String returns the canonical ABI type name.
	String() string

	isType()
}

// Elementary is a scalar type.
type Elementary struct {
	kind    ElementaryKind
	bits    uint
	dynamic bool
}

// Array is a fixed (T[N]) or dynamic-length (T[]) array.
type Array struct {
	elem    Type
	length  uint
	bits    uint
	fixed   bool
	dynamic bool
	sized   bool
}

// Enum is a named list of variants encoded as an unsigned index.
type Enum struct {
	name     string
	variants []string
	bits     uint
}

// Field is a named struct member.
type Field struct {
	Type Type
	Name string
}

// Struct is an ordered list of uniquely named fields.
type Struct struct {
	name    string
	fields  []Field
	index   map[string]int
	bits    uint
	dynamic bool
	sized   bool
}

func (*Elementary) isType() {}
func (*Array) isType()      {}
func (*Enum) isType()       {}
func (*Struct) isType()     {}

// Must panics if err is non-nil. Intended for descriptors declared at
// package level.
func Must[T Type](t T, err error) T {
	if err != nil {
		panic(err)
	}
	return t
}

// NewBool returns the bool type.
func NewBool() *Elementary {
	return &Elementary{kind: KindBool, bits: 8}
}

// NewByte returns the single byte type.
func NewByte() *Elementary {
	return &Elementary{kind: KindByte, bits: 8}
}

// NewAddress returns the 20-byte address type.
func NewAddress() *Elementary {
	return &Elementary{kind: KindAddress, bits: AddressBits}
}

// NewDynamicBytes returns the variable-length bytes type.
func NewDynamicBytes() *Elementary {
	return &Elementary{kind: KindBytes, dynamic: true}
}

// NewUint returns uintN. bitSize must be a multiple of 8 in [8, 256].
func NewUint(bitSize uint) (*Elementary, error) {
	if err := checkIntBits(bitSize); err != nil {
		return nil, err
	}
	return &Elementary{kind: KindUint, bits: bitSize}, nil
}

// NewFixedBytes returns bytesN for 1 <= length <= 32.
func NewFixedBytes(length uint) (*Elementary, error) {
	if length == 0 || length > MaxFixedBytes {
		return nil, errors.InvalidDescriptor(nil, fmt.Sprintf("fixed bytes length %d out of range [1, %d]", length, MaxFixedBytes))
	}
	return &Elementary{kind: KindBytes, bits: length * 8}, nil
}

func checkIntBits(bitSize uint) *errors.Error {
	if bitSize == 0 || bitSize > MaxUintBits || bitSize%8 != 0 {
		return errors.InvalidDescriptor(nil, fmt.Sprintf("bit size %d must be a multiple of 8 in [8, %d]", bitSize, MaxUintBits))
	}
	return nil
}

// Kind returns the scalar kind.
func (e *Elementary) Kind() ElementaryKind { return e.kind }

func (e *Elementary) Dynamic() bool { return e.dynamic }

func (e *Elementary) BitSize() (uint, bool) {
	if e.dynamic {
		return 0, false
	}
	return e.bits, true
}

func (e *Elementary) String() string {
	switch e.kind {
	case KindUint:
		return fmt.Sprintf("uint%d", e.bits)
	case KindBytes:
		if e.dynamic {
			return "bytes"
		}
		return fmt.Sprintf("bytes%d", e.bits/8)
	default:
		return e.kind.String()
	}
}

// NewArray returns the fixed-length array elem[length].
func NewArray(elem Type, length uint) (*Array, error) {
	if elem == nil {
		return nil, errors.InvalidDescriptor(nil, "array element type is nil")
	}
	if length == 0 {
		return nil, errors.InvalidDescriptor(nil, "fixed array length must be positive")
	}
	a := &Array{elem: elem, length: length, fixed: true, dynamic: elem.Dynamic()}
	if elemBits, ok := elem.BitSize(); ok {
		hi, total := bits.Mul(elemBits, length)
		if hi != 0 {
			return nil, errors.InvalidDescriptor(nil, fmt.Sprintf("array length %d overflows the static size of %s", length, elem))
		}
		a.bits, a.sized = total, true
	}
	return a, nil
}

// NewDynamicArray returns the dynamic-length array elem[].
func NewDynamicArray(elem Type) (*Array, error) {
	if elem == nil {
		return nil, errors.InvalidDescriptor(nil, "array element type is nil")
	}
	return &Array{elem: elem, dynamic: true}, nil
}

// Elem returns the element type.
func (a *Array) Elem() Type { return a.elem }

// Length returns the declared length. ok is false for dynamic-length arrays.
func (a *Array) Length() (length uint, ok bool) { return a.length, a.fixed }

func (a *Array) Dynamic() bool { return a.dynamic }

func (a *Array) BitSize() (uint, bool) { return a.bits, a.sized }

func (a *Array) String() string {
	if a.fixed {
		return fmt.Sprintf("%s[%d]", a.elem, a.length)
	}
	return a.elem.String() + "[]"
}

// BitsRequired returns the smallest multiple of 8 (minimum 8) able to hold n.
func BitsRequired(n uint64) uint {
	b := uint(bits.Len64(n))
	if m := b % 8; m != 0 {
		b += 8 - m
	}
	if b == 0 {
		b = 8
	}
	return b
}

// NewEnum returns an enum whose bit size is derived from the variant count.
func NewEnum(name string, variants ...string) (*Enum, error) {
	if len(variants) == 0 {
		return nil, errors.InvalidDescriptor([]string{name}, "enum must have at least one variant")
	}
	return NewEnumWithSize(name, BitsRequired(uint64(len(variants)-1)), variants...)
}

// NewEnumWithSize returns an enum with an explicit bit size, which must be
// wide enough to index every variant.
func NewEnumWithSize(name string, bitSize uint, variants ...string) (*Enum, error) {
	if err := checkIntBits(bitSize); err != nil {
		err.Path = []string{name}
		return nil, err
	}
	if len(variants) == 0 {
		return nil, errors.InvalidDescriptor([]string{name}, "enum must have at least one variant")
	}
	if need := BitsRequired(uint64(len(variants) - 1)); need > bitSize {
		return nil, errors.InvalidDescriptor([]string{name}, fmt.Sprintf("%d variants need %d bits, have %d", len(variants), need, bitSize))
	}
	seen := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if v == "" {
			return nil, errors.InvalidDescriptor([]string{name}, "empty variant name")
		}
		if _, dup := seen[v]; dup {
			return nil, errors.InvalidDescriptor([]string{name}, fmt.Sprintf("duplicate variant %q", v))
		}
		seen[v] = struct{}{}
	}
	return &Enum{
		name:     name,
		variants: append([]string(nil), variants...),
		bits:     bitSize,
	}, nil
}

// Name returns the enum name.
func (e *Enum) Name() string { return e.name }

// Variants returns a copy of the variant names in index order.
func (e *Enum) Variants() []string { return append([]string(nil), e.variants...) }

// NumVariants returns the number of variants.
func (e *Enum) NumVariants() int { return len(e.variants) }

// Variant returns the name at index i.
func (e *Enum) Variant(i uint64) (string, bool) {
	if i >= uint64(len(e.variants)) {
		return "", false
	}
	return e.variants[i], true
}

// Index returns the index of the named variant.
func (e *Enum) Index(name string) (uint64, bool) {
	for i, v := range e.variants {
		if v == name {
			return uint64(i), true
		}
	}
	return 0, false
}

func (e *Enum) Dynamic() bool { return false }

func (e *Enum) BitSize() (uint, bool) { return e.bits, true }

func (e *Enum) String() string { return fmt.Sprintf("uint%d", e.bits) }

// NewStruct returns a struct with the given fields in declaration order.
func NewStruct(name string, fields ...Field) (*Struct, error) {
	if len(fields) == 0 {
		return nil, errors.InvalidDescriptor([]string{name}, "struct must have at least one field")
	}
	s := &Struct{
		name:   name,
		fields: append([]Field(nil), fields...),
		index:  make(map[string]int, len(fields)),
		sized:  true,
	}
	for i, f := range s.fields {
		if f.Name == "" {
			return nil, errors.InvalidDescriptor([]string{name}, fmt.Sprintf("field %d has no name", i))
		}
		if f.Type == nil {
			return nil, errors.InvalidDescriptor([]string{name, f.Name}, "field type is nil")
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, errors.InvalidDescriptor([]string{name}, fmt.Sprintf("duplicate field %q", f.Name))
		}
		s.index[f.Name] = i

		if f.Type.Dynamic() {
			s.dynamic = true
		}
		if fieldBits, ok := f.Type.BitSize(); ok && s.sized {
			sum, carry := bits.Add(s.bits, fieldBits, 0)
			if carry != 0 {
				return nil, errors.InvalidDescriptor([]string{name, f.Name}, "struct static size overflows")
			}
			s.bits = sum
		} else {
			s.bits, s.sized = 0, false
		}
	}
	return s, nil
}

// Name returns the struct name.
func (s *Struct) Name() string { return s.name }

// Fields returns a copy of the fields in declaration order.
func (s *Struct) Fields() []Field { return append([]Field(nil), s.fields...) }

// NumFields returns the number of fields.
func (s *Struct) NumFields() int { return len(s.fields) }

// Field returns the i-th field.
func (s *Struct) Field(i int) Field { return s.fields[i] }

// FieldByName looks up a field by name.
func (s *Struct) FieldByName(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

func (s *Struct) Dynamic() bool { return s.dynamic }

func (s *Struct) BitSize() (uint, bool) { return s.bits, s.sized }

func (s *Struct) String() string { return "tuple" }
