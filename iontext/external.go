/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package iontext

// This file is the tokenizer's contract with the value-reader layer above
// it: capitalized re-exports of the byte-I/O and whitespace primitives a
// reader needs to extract a token's payload once the tokenizer has
// classified it. The reader is out of scope for this module (it's what
// turns, say, a String token's raw bytes into an escaped Go string); these
// exports are its only door into the tokenizer's internal state.

// ReadInput returns the next byte of input (0 for EOF), consulting the peek
// buffer before the underlying source.
func (t *Tokenizer) ReadInput() (byte, error) {
	return t.readInput()
}

// Unread pushes c back to be delivered again by the next ReadInput.
// Requires Position() > 0.
func (t *Tokenizer) Unread(c byte) error {
	return t.unread(c)
}

// PeekOne returns the next byte without consuming it. It fails with
// EarlyEOFError if the source has no more bytes, except when a look-ahead
// has already pushed EOF back, in which case it returns 0 with no error.
func (t *Tokenizer) PeekOne() (byte, error) {
	return t.peekOne()
}

// PeekMax reads up to n bytes, stopping early on EOF, and leaves the stream
// unchanged.
func (t *Tokenizer) PeekMax(n int) ([]byte, error) {
	return t.peekMax(n)
}

// PeekExactly is PeekMax, but fails with EarlyEOFError if fewer than n
// bytes are available.
func (t *Tokenizer) PeekExactly(n int) ([]byte, error) {
	return t.peekExactly(n)
}

// SkipOne discards one byte, returning false without error at EOF.
func (t *Tokenizer) SkipOne() (bool, error) {
	return t.skipOne()
}

// SkipExactly discards n bytes, returning false as soon as EOF is reached.
func (t *Tokenizer) SkipExactly(n int) (bool, error) {
	return t.skipExactly(n)
}

// SkipWhitespace skips Ion whitespace and comments, the mode used anywhere
// outside of a lob payload. It returns the first byte that is neither.
func (t *Tokenizer) SkipWhitespace() (byte, error) {
	return t.skipWhitespaceSkippingComments()
}

// SkipLobWhitespace skips Ion whitespace inside a {{ ... }} payload, where
// comments are not syntactically legal.
func (t *Tokenizer) SkipLobWhitespace() (byte, error) {
	return t.skipLobWhitespace()
}

// IsStopChar reports whether c is a valid way to end an unquoted value.
func (t *Tokenizer) IsStopChar(c byte) (bool, error) {
	return t.isStopChar(c)
}
