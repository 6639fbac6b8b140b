// Package iontext implements the scanning front end of an Ion text parser:
// given a byte stream containing Ion text, it classifies the next lexical
// token and leaves the token's payload bytes available for a reader layered
// on top to extract.
//
// The package does no value parsing (no numeric conversion, no timestamp
// construction, no symbol-table resolution) and does no multi-byte character
// decoding; it classifies single bytes and leaves escape-sequence and UTF-8
// handling inside string/symbol payloads to that higher layer.
//
// More information on the Ion text grammar can be found at
// http://amzn.github.io/ion-docs/docs/spec.html
package iontext
