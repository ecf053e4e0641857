package transcoder

import (
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"go.uber.org/zap"

	"github.com/wippyai/abicodec/errors"
	"github.com/wippyai/abicodec/internal/layout"
	"github.com/wippyai/abicodec/types"
)

// Decoder converts plain, packed and standard forms back to typed values.
// Safe for concurrent use.
type Decoder struct {
	compiler *Compiler
	opts     Options
}

func NewDecoder() *Decoder {
	return NewDecoderWithOptions(DefaultOptions())
}

func NewDecoderWithOptions(opts Options) *Decoder {
	return &Decoder{compiler: defaultCompiler, opts: opts.withDefaults()}
}

func NewDecoderWithCompiler(c *Compiler, opts Options) *Decoder {
	return &Decoder{compiler: c, opts: opts.withDefaults()}
}

var defaultDecoder = NewDecoder()

// DecodePlain converts a plain value back to typed form. Structs accept
// either a map keyed by field name or a sequence in field order.
func (d *Decoder) DecodePlain(t types.Type, plain any) (any, error) {
	if t == nil {
		return nil, nilDescriptor(errors.PhaseDecode)
	}
	return d.decodePlain(t, plain, nil, 0)
}

// DecodePacked decodes a packed buffer. Statically sized descriptors require
// an exact buffer length.
func (d *Decoder) DecodePacked(t types.Type, buf []byte) (any, error) {
	if t == nil {
		return nil, nilDescriptor(errors.PhaseDecode)
	}
	if err := checkInputSize(errors.PhaseDecode, len(buf), d.opts.MaxInputSize); err != nil {
		return nil, err
	}
	return d.decodePacked(t, buf, nil, 0)
}

// DecodeStandard decodes a standard ABI encoded parameter given as bytes or
// as a hex string.
func (d *Decoder) DecodeStandard(t types.Type, input any) (any, error) {
	if t == nil {
		return nil, nilDescriptor(errors.PhaseDecode)
	}
	data, err := standardInput(input)
	if err != nil {
		return nil, err
	}
	if err := checkInputSize(errors.PhaseDecode, len(data), d.opts.MaxInputSize); err != nil {
		return nil, err
	}

	st, err := d.compiler.Compile(t)
	if err != nil {
		return nil, err
	}
	values, err := abi.Arguments{{Type: st}}.Unpack(data)
	if err != nil {
		Logger().Debug("standard decode failed",
			zap.String("type", t.String()),
			zap.Int("size", len(data)),
			zap.Error(err))
		return nil, errors.External(errors.PhaseDecode, t.String(), err)
	}

	raw, err := d.fromStandard(t, reflect.ValueOf(values[0]), nil, 0)
	if err != nil {
		return nil, err
	}
	return d.decodePlain(t, raw, nil, 0)
}

// DecodePlain decodes with the default decoder.
func DecodePlain(t types.Type, plain any) (any, error) {
	return defaultDecoder.DecodePlain(t, plain)
}

// DecodePacked decodes with the default decoder.
func DecodePacked(t types.Type, buf []byte) (any, error) {
	return defaultDecoder.DecodePacked(t, buf)
}

// DecodeStandard decodes with the default decoder.
func DecodeStandard(t types.Type, input any) (any, error) {
	return defaultDecoder.DecodeStandard(t, input)
}

// IsPackedLayoutLegal reports whether s can be decoded from packed bytes:
// at most one dynamic field, in last position, and not an array of dynamic
// elements or a struct that fails the same check.
func IsPackedLayoutLegal(s *types.Struct) bool {
	return layout.IsPackedLegal(s)
}
