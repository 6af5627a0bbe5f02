// Package manifest loads, patches and validates the package.json written by
// the project generator. Key order is preserved on rewrite so the patched file
// diffs cleanly against the generator's output, and the result is checked
// against an embedded JSON Schema.
package manifest
