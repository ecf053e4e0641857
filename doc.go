// Package abicodec provides a typed codec for Solidity-style ABI values.
//
// A value is described by a type descriptor and converted between three
// forms: a plain JSON-like form, the tightly packed binary form, and the
// standard padded ABI encoding.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	abicodec/            Root package with the Codec interface
//	├── types/           Type descriptors, ABI type names, descriptor JSON/YAML
//	├── transcoder/      Plain, packed and standard encoding/decoding
//	├── errors/          Structured error types for debugging
//	└── internal/
//	    ├── coerce/      Scalar coercion (ints, hex, bytes, bools)
//	    └── layout/      Packed widths and layout legality
//
// # Quick Start
//
// Describe a type and encode a value:
//
//	order := types.Must(types.NewStruct("Order",
//	    types.Field{Name: "maker", Type: types.NewAddress()},
//	    types.Field{Name: "amount", Type: types.Must(types.NewUint(256))},
//	    types.Field{Name: "data", Type: types.NewDynamicBytes()},
//	))
//
//	packed, err := transcoder.EncodePacked(order, map[string]any{
//	    "maker":  "0x00000000000000000000000000000000000000aa",
//	    "amount": 1000,
//	    "data":   "0xdeadbeef",
//	})
//
// Decode it back:
//
//	v, err := transcoder.DecodePacked(order, packed)
//	// v is map[string]any{"maker": "0x...aa", "amount": *big.Int(1000), "data": "0xdeadbeef"}
//
// # Packed Decoding
//
// A packed buffer carries no offsets, so a struct can be decoded only when
// at most its last field is dynamic. Check with transcoder.IsPackedLayoutLegal
// before decoding untrusted layouts.
//
// # Error Handling
//
// Errors are *errors.Error values with a kind, a phase and the path of the
// offending value:
//
//	if errors.Is(err, errors.ErrInvalidLength) { ... }
//
// # Thread Safety
//
// Descriptors are immutable. Encoders, decoders and bound codecs hold no
// mutable state and are safe for concurrent use.
package abicodec
