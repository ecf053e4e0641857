package transcoder

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"go.uber.org/zap"

	"github.com/wippyai/abicodec/errors"
	"github.com/wippyai/abicodec/types"
)

// Encoder converts typed values to plain, packed and standard forms.
// Safe for concurrent use.
type Encoder struct {
	compiler *Compiler
	opts     Options
}

func NewEncoder() *Encoder {
	return NewEncoderWithOptions(DefaultOptions())
}

func NewEncoderWithOptions(opts Options) *Encoder {
	return &Encoder{compiler: defaultCompiler, opts: opts.withDefaults()}
}

func NewEncoderWithCompiler(c *Compiler, opts Options) *Encoder {
	return &Encoder{compiler: c, opts: opts.withDefaults()}
}

var defaultEncoder = NewEncoder()

// EncodePlain converts v to its plain form: bool, uint64, hex string,
// []any or map[string]any.
func (e *Encoder) EncodePlain(t types.Type, v any) (any, error) {
	if t == nil {
		return nil, nilDescriptor(errors.PhaseEncode)
	}
	return e.encodePlain(t, v, nil, 0)
}

// EncodePacked returns the packed encoding of v: each value at its natural
// width, concatenated with no padding, offsets or length prefixes.
func (e *Encoder) EncodePacked(t types.Type, v any) ([]byte, error) {
	if t == nil {
		return nil, nilDescriptor(errors.PhaseEncode)
	}

	buf := getBuf()
	defer putBuf(buf)

	if err := e.encodePacked(t, v, buf, nil, 0); err != nil {
		return nil, err
	}
	return append([]byte{}, *buf...), nil
}

// EncodeStandard returns the standard ABI encoding of v as a single
// parameter.
func (e *Encoder) EncodeStandard(t types.Type, v any) ([]byte, error) {
	if t == nil {
		return nil, nilDescriptor(errors.PhaseEncode)
	}
	st, err := e.compiler.Compile(t)
	if err != nil {
		return nil, err
	}
	gv, err := e.toStandard(st, t, v, nil, 0)
	if err != nil {
		return nil, err
	}

	out, err := abi.Arguments{{Type: st}}.Pack(gv.Interface())
	if err != nil {
		Logger().Debug("standard encode failed",
			zap.String("type", t.String()),
			zap.Error(err))
		return nil, errors.External(errors.PhaseEncode, t.String(), err)
	}
	return out, nil
}

func nilDescriptor(phase errors.Phase) error {
	return errors.New(phase, errors.KindInvalidDescriptor).
		Detail("descriptor cannot be nil").
		Build()
}

// EncodePlain encodes v with the default encoder.
func EncodePlain(t types.Type, v any) (any, error) {
	return defaultEncoder.EncodePlain(t, v)
}

// EncodePacked encodes v with the default encoder.
func EncodePacked(t types.Type, v any) ([]byte, error) {
	return defaultEncoder.EncodePacked(t, v)
}

// EncodeStandard encodes v with the default encoder.
func EncodeStandard(t types.Type, v any) ([]byte, error) {
	return defaultEncoder.EncodeStandard(t, v)
}
