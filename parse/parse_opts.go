package parse

// DefaultMaxDepth bounds the nesting depth of parsed documents when no
// MaxDepth option is given. Depth is bounded so adversarial input fails
// with ErrDepth instead of exhausting the call stack.
const DefaultMaxDepth = 10000

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth sets the maximum nesting depth of arrays and objects.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
