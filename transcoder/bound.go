package transcoder

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/wippyai/abicodec"
	"github.com/wippyai/abicodec/errors"
	"github.com/wippyai/abicodec/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var _ abicodec.Codec = (*Bound)(nil)

// Bound pairs a descriptor with an encoder and decoder so callers can convert
// values without passing the descriptor around.
type Bound struct {
	typ types.Type
	enc *Encoder
	dec *Decoder
}

// Bind returns codecs for t using the default encoder and decoder.
func Bind(t types.Type) *Bound {
	return &Bound{typ: t, enc: defaultEncoder, dec: defaultDecoder}
}

// BindWithOptions returns codecs for t using the given limits.
func BindWithOptions(t types.Type, opts Options) *Bound {
	return &Bound{typ: t, enc: NewEncoderWithOptions(opts), dec: NewDecoderWithOptions(opts)}
}

// Type returns the bound descriptor.
func (b *Bound) Type() types.Type { return b.typ }

func (b *Bound) ToStandard(v any) ([]byte, error) { return b.enc.EncodeStandard(b.typ, v) }

func (b *Bound) FromStandard(input any) (any, error) { return b.dec.DecodeStandard(b.typ, input) }

func (b *Bound) ToPacked(v any) ([]byte, error) { return b.enc.EncodePacked(b.typ, v) }

func (b *Bound) FromPacked(buf []byte) (any, error) { return b.dec.DecodePacked(b.typ, buf) }

func (b *Bound) ToPlain(v any) (any, error) { return b.enc.EncodePlain(b.typ, v) }

func (b *Bound) FromPlain(plain any) (any, error) { return b.dec.DecodePlain(b.typ, plain) }

// ToJSON marshals the plain form of v.
func (b *Bound) ToJSON(v any) ([]byte, error) {
	plain, err := b.ToPlain(v)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(plain)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidValue, err, "marshal plain value")
	}
	return data, nil
}

// FromJSON decodes a JSON document holding the plain form of a value.
func (b *Bound) FromJSON(data []byte) (any, error) {
	if err := checkInputSize(errors.PhaseDecode, len(data), b.dec.opts.MaxInputSize); err != nil {
		return nil, err
	}
	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidValue, err, "unmarshal plain value")
	}
	return b.FromPlain(plain)
}
