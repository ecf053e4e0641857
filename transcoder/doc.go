// Package transcoder converts values between typed, plain, packed and
// standard ABI forms, driven by a descriptor from the types package.
//
// # Forms
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ Plain (JSON-like) ←→ [Transcoder] ←→ Packed / Standard bytes │
//	└──────────────────────────────────────────────────────────────┘
//
// Typed values are what DecodeX returns and what EncodeX accepts at its most
// precise:
//
//	Descriptor              Typed value        Plain value
//	─────────────────────────────────────────────────────────
//	bool                    bool               bool
//	uintN (N < 53), enum    uint64             uint64
//	uintN (N >= 53)         *big.Int           hex string
//	byte/bytesN/address     hex string         hex string
//	T[N], T[]               []any              []any
//	tuple                   map[string]any     map[string]any
//
// Encoders are lenient on input: integers may be any Go integer, a float64
// holding an integer, a decimal or hex string, a byte slice, *big.Int or
// uint256.Int. Hex output is always lowercase with a 0x prefix.
//
// # Packed Layout
//
// Packed encoding writes each scalar at its natural width (uintN as N/8
// bytes, address as 20, bool as 1, dynamic bytes at their own length) and
// concatenates composites with no offsets or length prefixes. Decoding is
// only possible when positions follow from the descriptor alone; see
// IsPackedLayoutLegal.
//
// # Standard Layout
//
// Standard encoding is delegated to go-ethereum's accounts/abi package. The
// descriptor is translated with types.ToDef and compiled once per
// descriptor by a Compiler.
//
// # Key Types
//
//	Encoder   - EncodePlain, EncodePacked, EncodeStandard
//	Decoder   - DecodePlain, DecodePacked, DecodeStandard
//	Compiler  - caches go-ethereum ABI types per descriptor
//	Bound     - codecs bound to one descriptor, with JSON helpers
//
// # Errors
//
// All errors are *errors.Error values carrying a kind and the path of the
// offending value (items[2].owner). Use errors.Is with the sentinels in the
// errors package to test the kind.
package transcoder
