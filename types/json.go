package types

import (
	"fmt"

	"github.com/ghodss/yaml"
	jsoniter "github.com/json-iterator/go"

	"github.com/wippyai/abicodec/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	metaElementary = "elementary"
	metaArray      = "array"
	metaEnum       = "enum"
	metaStruct     = "struct"
)

// descriptor is the meta-tagged document form of a Type:
//
//	{"meta": "elementary", "type": "uint", "size": 256}
//	{"meta": "array", "baseType": {...}, "length": 3}
//	{"meta": "enum", "name": "Side", "fields": ["Buy", "Sell"]}
//	{"meta": "struct", "name": "Order", "fields": [{"name": "maker", "type": {...}}]}
//
// dynamic and size are optional on input; when present they must agree with
// the values derived from the rest of the document.
type descriptor struct {
	BaseType *descriptor         `json:"baseType,omitempty"`
	Length   *uint               `json:"length,omitempty"`
	Dynamic  *bool               `json:"dynamic,omitempty"`
	Size     *uint               `json:"size,omitempty"`
	Meta     string              `json:"meta"`
	Name     string              `json:"name,omitempty"`
	Type     string              `json:"type,omitempty"`
	Fields   jsoniter.RawMessage `json:"fields,omitempty"`
}

type fieldDescriptor struct {
	Type *descriptor `json:"type"`
	Name string      `json:"name"`
}

// FromJSON loads a descriptor from its meta-tagged JSON form.
func FromJSON(data []byte) (Type, error) {
	var d descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(errors.PhaseCompile, errors.KindInvalidDescriptor, err, "parse descriptor JSON")
	}
	return d.build(nil)
}

// FromYAML loads a descriptor from the YAML rendering of its JSON form.
func FromYAML(data []byte) (Type, error) {
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCompile, errors.KindInvalidDescriptor, err, "parse descriptor YAML")
	}
	return FromJSON(j)
}

// ToJSON renders t in the meta-tagged JSON form with dynamic and size filled in.
func ToJSON(t Type) ([]byte, error) {
	d, err := toDescriptor(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(d)
}

func (d *descriptor) build(path []string) (Type, error) {
	t, err := d.buildType(path)
	if err != nil {
		return nil, withPath(err, path)
	}

	if d.Dynamic != nil && *d.Dynamic != t.Dynamic() {
		return nil, errors.InvalidDescriptor(path, fmt.Sprintf("declared dynamic=%t, derived %t", *d.Dynamic, t.Dynamic()))
	}
	if d.Size != nil {
		if size, ok := t.BitSize(); !ok || size != *d.Size {
			return nil, errors.InvalidDescriptor(path, fmt.Sprintf("declared size %d does not match %s", *d.Size, t))
		}
	}
	return t, nil
}

func (d *descriptor) buildType(path []string) (Type, error) {
	switch d.Meta {
	case metaElementary:
		return d.buildElementary(path)

	case metaArray:
		if d.BaseType == nil {
			return nil, errors.InvalidDescriptor(path, "array without baseType")
		}
		elem, err := d.BaseType.build(append(append([]string{}, path...), "[]"))
		if err != nil {
			return nil, err
		}
		if d.Length == nil {
			return NewDynamicArray(elem)
		}
		return NewArray(elem, *d.Length)

	case metaEnum:
		var variants []string
		if len(d.Fields) > 0 {
			if err := json.Unmarshal(d.Fields, &variants); err != nil {
				return nil, errors.Wrap(errors.PhaseCompile, errors.KindInvalidDescriptor, err, "enum fields must be a list of names")
			}
		}
		if d.Size == nil {
			return NewEnum(d.Name, variants...)
		}
		return NewEnumWithSize(d.Name, *d.Size, variants...)

	case metaStruct:
		var raw []fieldDescriptor
		if len(d.Fields) > 0 {
			if err := json.Unmarshal(d.Fields, &raw); err != nil {
				return nil, errors.Wrap(errors.PhaseCompile, errors.KindInvalidDescriptor, err, "struct fields must be a list of {name, type}")
			}
		}
		fields := make([]Field, len(raw))
		for i, f := range raw {
			fieldPath := append(append([]string{}, path...), f.Name)
			if f.Type == nil {
				return nil, errors.InvalidDescriptor(fieldPath, "field without type")
			}
			ft, err := f.Type.build(fieldPath)
			if err != nil {
				return nil, err
			}
			fields[i] = Field{Name: f.Name, Type: ft}
		}
		return NewStruct(d.Name, fields...)

	default:
		return nil, errors.InvalidDescriptor(path, fmt.Sprintf("unknown meta %q", d.Meta))
	}
}

func (d *descriptor) buildElementary(path []string) (Type, error) {
	kind, ok := ParseElementaryKind(d.Type)
	if !ok {
		return nil, errors.InvalidDescriptor(path, fmt.Sprintf("unknown elementary type %q", d.Type))
	}

	switch kind {
	case KindBool:
		return NewBool(), nil
	case KindByte:
		return NewByte(), nil
	case KindAddress:
		return NewAddress(), nil
	case KindUint:
		if d.Size == nil {
			return NewUint(MaxUintBits)
		}
		return NewUint(*d.Size)
	case KindBytes:
		if d.Size == nil || (d.Dynamic != nil && *d.Dynamic) {
			return NewDynamicBytes(), nil
		}
		if *d.Size%8 != 0 {
			return nil, errors.InvalidDescriptor(path, fmt.Sprintf("bytes size %d is not a whole number of bytes", *d.Size))
		}
		return NewFixedBytes(*d.Size / 8)
	default:
		return nil, errors.InvalidDescriptor(path, fmt.Sprintf("unsupported elementary kind %s", kind))
	}
}

func toDescriptor(t Type) (*descriptor, error) {
	dynamic := t.Dynamic()
	d := &descriptor{Dynamic: &dynamic}
	if size, ok := t.BitSize(); ok {
		d.Size = &size
	}

	switch typ := t.(type) {
	case *Elementary:
		d.Meta = metaElementary
		d.Type = typ.kind.String()
	case *Array:
		d.Meta = metaArray
		base, err := toDescriptor(typ.elem)
		if err != nil {
			return nil, err
		}
		d.BaseType = base
		if length, ok := typ.Length(); ok {
			d.Length = &length
		}
	case *Enum:
		d.Meta = metaEnum
		d.Name = typ.name
		raw, err := json.Marshal(typ.variants)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseCompile, errors.KindInvalidDescriptor, err, "marshal enum variants")
		}
		d.Fields = raw
	case *Struct:
		d.Meta = metaStruct
		d.Name = typ.name
		fields := make([]fieldDescriptor, len(typ.fields))
		for i, f := range typ.fields {
			ft, err := toDescriptor(f.Type)
			if err != nil {
				return nil, err
			}
			fields[i] = fieldDescriptor{Name: f.Name, Type: ft}
		}
		raw, err := json.Marshal(fields)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseCompile, errors.KindInvalidDescriptor, err, "marshal struct fields")
		}
		d.Fields = raw
	default:
		return nil, errors.Unsupported(errors.PhaseCompile, fmt.Sprintf("descriptor type %T", t))
	}
	return d, nil
}

func withPath(err error, path []string) error {
	if e, ok := err.(*errors.Error); ok && len(e.Path) == 0 && len(path) > 0 {
		e.Path = path
	}
	return err
}
