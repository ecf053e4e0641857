package types

// Def is a type in the standard ABI JSON dialect, the shape used by
// contract ABI files and standard ABI libraries:
//
//	{"type": "tuple", "name": "Order", "components": [{"type": "address", "name": "maker"}]}
type Def struct {
	Type       string `json:"type"`
	Name       string `json:"name,omitempty"`
	Components []Def  `json:"components,omitempty"`
}

// TypeName returns the canonical ABI type name of t: uintN, bool, byte,
// bytesN, bytes, address, T[N], T[] or tuple. Enums collapse to uintN.
func TypeName(t Type) string {
	return t.String()
}

// ToDef translates a descriptor to the standard ABI JSON dialect. Arrays carry
// the components of their element type; struct fields are named after the
// field rather than the nested struct.
func ToDef(t Type) Def {
	switch typ := t.(type) {
	case *Elementary, *Enum:
		return Def{Type: typ.String()}
	case *Array:
		def := ToDef(typ.elem)
		def.Type = typ.String()
		return def
	case *Struct:
		components := make([]Def, len(typ.fields))
		for i, f := range typ.fields {
			components[i] = ToDef(f.Type)
			components[i].Name = f.Name
		}
		return Def{Type: typ.String(), Name: typ.name, Components: components}
	default:
		return Def{}
	}
}
