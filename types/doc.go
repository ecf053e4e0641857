// Package types defines the ABI type descriptor model.
//
// A descriptor is one of four immutable variants:
//
//   - Elementary: bool, byte, bytesN / bytes, uintN, address
//   - Array:      T[N] (fixed) or T[] (dynamic length)
//   - Enum:       named variants, encoded as an unsigned index
//   - Struct:     ordered, uniquely named fields (ABI tuple)
//
// Static attributes are computed once by the constructors and cached: whether
// the type is dynamic (its encoded length depends on the value) and, for
// static types, its total bit size. Descriptors carry no per-call state and
// are safe for concurrent use.
//
// # Construction
//
//	amount := types.Must(types.NewUint(256))
//	order := types.Must(types.NewStruct("Order",
//		types.Field{Name: "maker", Type: types.NewAddress()},
//		types.Field{Name: "amount", Type: amount},
//		types.Field{Name: "data", Type: types.NewDynamicBytes()},
//	))
//
// Descriptors can also be loaded from the meta-tagged JSON or YAML format
// with FromJSON and FromYAML, and translated to the standard ABI JSON
// dialect with ToDef.
package types
