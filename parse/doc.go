// Package parse validates JSON text by recursive descent over the
// token sequence.
//
// # Usage
//
//	// Validate without building anything
//	if err := parse.Validate(data); err != nil {
//	    return err
//	}
//
//	// Or keep the tree
//	node, err := parse.Parse(data)
//
// The first lexical or grammatical error terminates a run; there is no
// recovery. Each call owns its own cursor and state, so independent
// inputs can be validated concurrently.
//
// # Related Packages
//
//   - github.com/yaziciahmet/jsonv/ir - tree representation
//   - github.com/yaziciahmet/jsonv/encode - encode trees back to text
//   - github.com/yaziciahmet/jsonv/token - tokenization
package parse
