// Package token provides tokenization support for JSON text.
//
// [Tokenize] is a function for tokenizing bytes eagerly. [Tokenizer]
// produces the same tokens one at a time, which lets a consumer stop at
// the first token it does not want to pay for.
package token
