package transcoder

// Default limits.
const (
	DefaultMaxDepth     = 32
	DefaultMaxInputSize = 16 << 20 // 16 MiB
)

// Options configures encoder and decoder limits.
type Options struct {
	// MaxDepth bounds descriptor nesting. Deeper values fail with
	// errors.KindOverflow.
	MaxDepth int
	// MaxInputSize bounds the byte length accepted by packed and standard
	// decoding.
	MaxInputSize int
}

// DefaultOptions returns default codec configuration.
func DefaultOptions() Options {
	return Options{
		MaxDepth:     DefaultMaxDepth,
		MaxInputSize: DefaultMaxInputSize,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxInputSize <= 0 {
		o.MaxInputSize = DefaultMaxInputSize
	}
	return o
}
