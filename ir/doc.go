// Package ir holds the in-memory representation of JSON documents
// produced by parse.Parse. Validation alone never builds it.
package ir
