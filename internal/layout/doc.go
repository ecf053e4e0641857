// Package layout answers static questions about the packed layout of a
// descriptor: its byte width and whether a packed buffer can be sliced back
// into its parts without length prefixes or offsets.
//
// # Layout Rules
//
// Packed encoding concatenates values with no delimiters, so positions must
// be inferable from static type information alone:
//   - Static types occupy exactly BitSize/8 bytes.
//   - A struct may contain at most one dynamic field, and only as its last
//     field. A trailing dynamic array must have statically sized elements; a
//     trailing dynamic struct must itself satisfy this rule.
//   - A dynamic-length array needs statically sized elements.
//
// This package is internal to the codec.
package layout
