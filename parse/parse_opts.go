package parse

// DefaultMaxDepth bounds container nesting so adversarial documents
// cannot exhaust the call stack.
const DefaultMaxDepth = 10000

type parseOpts struct {
	maxDepth int
	build    bool
}

type Option func(*parseOpts)

// MaxDepth overrides the nesting ceiling. n <= 0 keeps the default.
func MaxDepth(n int) Option {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

func newOpts(opts []Option) *parseOpts {
	o := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	return o
}
