package transcoder

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"go.uber.org/zap"

	"github.com/wippyai/abicodec/errors"
	"github.com/wippyai/abicodec/types"
)

// Compiler translates descriptors into go-ethereum ABI types. Results are
// cached per descriptor; descriptors are immutable so the cache never goes
// stale. Safe for concurrent use.
type Compiler struct {
	cache sync.Map // types.Type -> abi.Type
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

var defaultCompiler = NewCompiler()

// StandardType returns the go-ethereum ABI type for t.
func StandardType(t types.Type) (abi.Type, error) {
	return defaultCompiler.Compile(t)
}

func (c *Compiler) Compile(t types.Type) (abi.Type, error) {
	if t == nil {
		return abi.Type{}, errors.New(errors.PhaseCompile, errors.KindInvalidDescriptor).
			Detail("descriptor cannot be nil").
			Build()
	}
	if cached, ok := c.cache.Load(t); ok {
		return cached.(abi.Type), nil
	}

	def := types.ToDef(t)
	typ, err := abi.NewType(standardName(def.Type), "", marshalings(def.Components))
	if err != nil {
		Logger().Debug("standard type rejected",
			zap.String("type", def.Type),
			zap.Error(err))
		return abi.Type{}, errors.External(errors.PhaseCompile, def.Type, err)
	}

	c.cache.Store(t, typ)
	return typ, nil
}

func marshalings(defs []types.Def) []abi.ArgumentMarshaling {
	if len(defs) == 0 {
		return nil
	}
	out := make([]abi.ArgumentMarshaling, len(defs))
	for i, d := range defs {
		out[i] = abi.ArgumentMarshaling{
			Name:       d.Name,
			Type:       standardName(d.Type),
			Components: marshalings(d.Components),
		}
	}
	return out
}

// standardName maps "byte" to its alias "bytes1", which is the spelling the
// library understands.
func standardName(name string) string {
	if name == "byte" || strings.HasPrefix(name, "byte[") {
		return "bytes1" + name[len("byte"):]
	}
	return name
}
