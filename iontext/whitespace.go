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

// skipWhitespace modes are deliberately three separate methods rather than
// one method parameterized by a pair of booleans: the three behaviors
// (skip comments, fail on comments, pass comments through untouched) are
// qualitatively different strategies for handling '/', and collapsing them
// into a runtime flag has historically been a source of subtle clob/blob
// bugs in other Ion implementations.

// skipWhitespaceSkippingComments is the default mode: used everywhere
// outside of blob/clob payloads. It reads past Ion whitespace and both
// comment forms, and returns the first byte that is neither.
func (t *Tokenizer) skipWhitespaceSkippingComments() (byte, error) {
	return t.skipWhitespaceWith(t.skipComment)
}

// skipWhitespaceFailOnComment is used inside {{ ... }} lob payloads, where
// comments are not allowed: any '/' fails with CommentInLobError, whatever
// byte follows it.
func (t *Tokenizer) skipWhitespaceFailOnComment() (byte, error) {
	return t.skipWhitespaceWith(t.failOnComment)
}

// skipWhitespacePassThrough skips Ion whitespace but treats '/' as an
// ordinary, non-whitespace byte: it is returned to the caller immediately,
// without inspecting what follows it.
func (t *Tokenizer) skipWhitespacePassThrough() (byte, error) {
	return t.skipWhitespaceWith(nil)
}

// commentAction is the strategy skipWhitespaceWith uses when it reads a
// '/'. It returns true if it consumed a comment (so the whitespace loop
// should keep going), false if '/' should be handed back to the caller,
// and an error if the comment was malformed or disallowed.
type commentAction func() (bool, error)

// skipWhitespaceWith reads bytes until it finds one that is neither Ion
// whitespace nor (per handler) the opening of a comment it's allowed to
// skip. It never unreads the terminating byte; it returns it directly.
// handler == nil means '/' always terminates the loop (pass-through mode).
func (t *Tokenizer) skipWhitespaceWith(handler commentAction) (byte, error) {
	for {
		c, err := t.readInput()
		if err != nil {
			return 0, err
		}

		switch {
		case isWhitespace(c):
			// keep going

		case c == '/':
			if handler == nil {
				return '/', nil
			}
			handled, err := handler()
			if err != nil {
				return 0, err
			}
			if !handled {
				return '/', nil
			}

		default:
			return c, nil
		}
	}
}

// skipLobWhitespace is the variant used inside {{ ... }}, where a comment is
// syntactically prohibited: any '/' encountered there is a hard error
// (CommentInLobError), including a '/' that does not open a comment.
func (t *Tokenizer) skipLobWhitespace() (byte, error) {
	return t.skipWhitespaceFailOnComment()
}

// failOnComment is the commentAction used inside clob text, where the
// presence of what looks like a comment opener is itself an error.
func (t *Tokenizer) failOnComment() (bool, error) {
	return false, &CommentInLobError{Position: t.position - 1}
}

// skipComment is the commentAction that actually skips over line and block
// comments. It's called immediately after reading a '/'; it peeks one more
// byte to tell which (if either) comment form follows.
func (t *Tokenizer) skipComment() (bool, error) {
	c, err := t.peekOneLax()
	if err != nil {
		return false, err
	}

	switch c {
	case '/':
		return true, t.skipLineComment()
	case '*':
		return true, t.skipBlockComment()
	default:
		return false, nil
	}
}

// skipLineComment skips a "// ..." comment, up to (and including) the
// terminating '\n', or EOF.
func (t *Tokenizer) skipLineComment() error {
	for {
		c, err := t.readInput()
		if err != nil {
			return err
		}
		if c == eof || c == '\n' {
			return nil
		}
	}
}

// skipBlockComment skips a "/* ... */" comment. An unterminated block
// comment is a hard error.
func (t *Tokenizer) skipBlockComment() error {
	start := t.position - 1
	star := false
	for {
		c, err := t.readInput()
		if err != nil {
			return err
		}
		if c == eof {
			return &UnterminatedCommentError{Position: start}
		}
		if star && c == '/' {
			return nil
		}
		star = c == '*'
	}
}
