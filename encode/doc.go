// Package encode encodes IR nodes back to JSON text.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//	err = encode.Encode(node, os.Stdout)
//
//	// Compact form
//	err = encode.Encode(node, w, encode.EncodeWire(true))
//
// # Related Packages
//
//   - github.com/yaziciahmet/jsonv/ir - IR representation
//   - github.com/yaziciahmet/jsonv/parse - Parse text to IR
package encode
