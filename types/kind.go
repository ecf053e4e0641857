package types

// ElementaryKind discriminates the scalar ABI types.
type ElementaryKind uint8

const (
	KindBool ElementaryKind = iota
	KindByte
	KindBytes
	KindUint
	KindAddress
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindByte:    "byte",
	KindBytes:   "bytes",
	KindUint:    "uint",
	KindAddress: "address",
}

func (k ElementaryKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseElementaryKind maps a kind name ("uint", "bytes", ...) to its kind.
func ParseElementaryKind(name string) (ElementaryKind, bool) {
	for k, n := range kindNames {
		if n == name {
			return ElementaryKind(k), true
		}
	}
	return 0, false
}

const (
	// AddressBits is the width of an address.
	AddressBits = 160
	// MaxUintBits is the widest unsigned integer.
	MaxUintBits = 256
	// MaxFixedBytes is the longest fixed byte array (bytes32).
	MaxFixedBytes = 32
)
