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

import (
	"fmt"

	"golang.org/x/xerrors"
)

// UnexpectedCharError is returned when next_token (or one of the predicate
// checks it delegates to) encounters a byte that cannot begin or continue
// any valid token in its current position.
type UnexpectedCharError struct {
	Byte     byte
	Position uint64
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("iontext: unexpected character %q at position %d", e.Byte, e.Position)
}

// EarlyEOFError is returned when the source runs out of bytes in the middle
// of a look-ahead that requires more of them: peekExactly asked for more
// bytes than remain, CRLF normalization found a lone trailing '\r', or a
// payload-skip helper ran off the end of the input.
type EarlyEOFError struct {
	Position uint64
}

func (e *EarlyEOFError) Error() string {
	return fmt.Sprintf("iontext: unexpected end of input at position %d", e.Position)
}

// UnreadAtStartError is returned when unread is called with position == 0;
// there is nothing before the start of the stream to push a byte back onto.
type UnreadAtStartError struct{}

func (e *UnreadAtStartError) Error() string {
	return "iontext: unread called at position 0"
}

// CommentInLobError is returned when skipLobWhitespace (used inside a
// {{ ... }} blob or clob, where comments are not syntactically legal)
// encounters a '/'.
type CommentInLobError struct {
	Position uint64
}

func (e *CommentInLobError) Error() string {
	return fmt.Sprintf("iontext: comments are not allowed inside a lob, at position %d", e.Position)
}

// UnterminatedCommentError is returned when a block comment ("/* ...") never
// finds a closing "*/" before the source is exhausted.
type UnterminatedCommentError struct {
	Position uint64
}

func (e *UnterminatedCommentError) Error() string {
	return fmt.Sprintf("iontext: unterminated block comment starting near position %d", e.Position)
}

// NegativeTimestampError is returned when a '-' is immediately followed by a
// digit run that is shaped like a timestamp; Ion has no such thing as a
// negative timestamp.
type NegativeTimestampError struct {
	Position uint64
}

func (e *NegativeTimestampError) Error() string {
	return fmt.Sprintf("iontext: timestamps cannot be negative, at position %d", e.Position)
}

// IOError wraps a failure from the underlying byte source. It is the only
// error kind in this package that wraps another error, via %w, so callers
// can unwrap through to the root cause with errors.Is/errors.As.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("i/o error: %v", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// wrapIOError lifts a raw error from the underlying io.Reader into an
// IOError, chained with %w so errors.Is/errors.As (and xerrors.Is/As) can
// see through it to the original cause.
func wrapIOError(err error) error {
	return xerrors.Errorf("iontext: %w", &IOError{Err: err})
}
