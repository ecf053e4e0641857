// Package coerce converts loosely typed scalar values to the canonical forms
// used by the codec.
//
// Accepted inputs are Go integers, JSON numbers (float64), decimal and hex
// strings, byte slices and byte arrays (including common.Address), *big.Int
// and uint256.Int. Named types are handled by their underlying kind.
//
// # Contents
//
//   - coerce.go: ToBig, ToInt, ToBool, ToHex, ToBytes
//   - helpers.go: hex parsing and shared utilities
//
// Errors carry a kind from the errors package but no phase or path; the
// transcoder attaches those at the frame that called the coercion.
//
// This package is internal to the codec.
package coerce
