package abicodec

// Codec converts values of a single descriptor between forms.
type Codec interface {
	PlainCodec
	ToPacked(v any) ([]byte, error)
	FromPacked(buf []byte) (any, error)
	ToStandard(v any) ([]byte, error)
	FromStandard(input any) (any, error)
}

// PlainCodec converts values to and from the plain JSON-like form.
type PlainCodec interface {
	ToPlain(v any) (any, error)
	FromPlain(plain any) (any, error)
	ToJSON(v any) ([]byte, error)
	FromJSON(data []byte) (any, error)
}
