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
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

// eof is the sentinel byte value readInput returns once the source is
// drained. It must not otherwise appear in well-formed Ion text.
const eof byte = 0

// Tokenizer is a single-threaded, pull-driven state machine that classifies
// the lexical tokens of an Ion text document. It owns its byte source and
// its peek buffer exclusively; it must not be used concurrently from
// multiple goroutines without external synchronization.
type Tokenizer struct {
	src  *bufio.Reader
	peek []byte // LIFO: the tail is the next byte readInput will return

	currentToken Kind
	finished     bool
	position     uint64
}

// New constructs a Tokenizer reading from r, with position 0, an empty peek
// buffer, current token Invalid, and finished true.
func New(r io.Reader) *Tokenizer {
	return &Tokenizer{
		src:          bufio.NewReader(r),
		currentToken: Invalid,
		finished:     true,
	}
}

// NewFromBytes constructs a Tokenizer reading from an in-memory byte slice.
func NewFromBytes(b []byte) *Tokenizer {
	return New(bytes.NewReader(b))
}

// NewFromString constructs a Tokenizer reading from an in-memory string.
func NewFromString(s string) *Tokenizer {
	return New(strings.NewReader(s))
}

// CurrentToken returns the most recently classified token kind.
func (t *Tokenizer) CurrentToken() Kind {
	return t.currentToken
}

// Finished reports whether the payload of the current token has already
// been consumed (by a reader, or by Finish).
func (t *Tokenizer) Finished() bool {
	return t.finished
}

// Position returns the 1-based count of bytes delivered by readInput since
// construction, counting only the post-CRLF-normalization stream.
func (t *Tokenizer) Position() uint64 {
	return t.position
}

// IsEOF reports whether the source is drained and the current token is EOF.
func (t *Tokenizer) IsEOF() bool {
	if t.currentToken != EOF {
		return false
	}
	_, err := t.src.Peek(1)
	return errors.Is(err, io.EOF) && len(t.peek) == 0
}

// readInput returns the next byte of input, consulting the peek buffer
// before the underlying source. EOF is reported as the sentinel byte 0.
// CRLF and lone CR are normalized to LF.
func (t *Tokenizer) readInput() (byte, error) {
	t.position++

	if n := len(t.peek); n > 0 {
		c := t.peek[n-1]
		t.peek = t.peek[:n-1]
		return c, nil
	}

	c, err := t.src.ReadByte()
	if errors.Is(err, io.EOF) {
		return eof, nil
	}
	if err != nil {
		return 0, wrapIOError(err)
	}

	if c != '\r' {
		return c, nil
	}

	next, err := t.src.Peek(1)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, wrapIOError(err)
	}
	if errors.Is(err, io.EOF) {
		// A bare trailing '\r' can't be resolved into LF or CRLF.
		return 0, &EarlyEOFError{Position: t.position}
	}
	if next[0] == '\n' {
		if _, err := t.src.ReadByte(); err != nil {
			return 0, wrapIOError(err)
		}
	}
	return '\n', nil
}

// unread pushes c back onto the peek buffer to be delivered again by the
// next readInput. Requires position > 0.
func (t *Tokenizer) unread(c byte) error {
	if t.position == 0 {
		return &UnreadAtStartError{}
	}
	t.position--
	t.peek = append(t.peek, c)
	return nil
}

// peekOne returns the next byte without consuming it. If the peek buffer is
// non-empty its tail is returned as is, which is the eof sentinel (with no
// error) when a look-ahead pushed EOF back; otherwise it fails with
// EarlyEOFError if the source has no more bytes to offer.
func (t *Tokenizer) peekOne() (byte, error) {
	if n := len(t.peek); n > 0 {
		return t.peek[n-1], nil
	}

	c, err := t.readInput()
	if err != nil {
		return 0, err
	}
	if uerr := t.unread(c); uerr != nil {
		return 0, uerr
	}
	if c == eof {
		return 0, &EarlyEOFError{Position: t.position}
	}
	return c, nil
}

// peekOneLax is peekOne's EOF-tolerant twin, used internally by look-ahead
// code that needs to treat "no byte follows" as a plain negative answer
// rather than a hard failure (e.g. deciding that '.' at EOF is a bare Dot,
// not the start of an operator symbol). It returns the eof sentinel rather
// than failing when the source is exhausted.
func (t *Tokenizer) peekOneLax() (byte, error) {
	c, err := t.peekOne()
	if err != nil {
		var early *EarlyEOFError
		if errors.As(err, &early) {
			return eof, nil
		}
		return 0, err
	}
	return c, nil
}

// peekMax reads up to n bytes, stopping early on EOF, and leaves the stream
// unchanged. The bytes are returned in read order; fewer than n bytes means
// EOF was reached.
func (t *Tokenizer) peekMax(n int) ([]byte, error) {
	buf := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		c, err := t.readInput()
		if err != nil {
			for j := len(buf) - 1; j >= 0; j-- {
				_ = t.unread(buf[j])
			}
			return nil, err
		}
		if c == eof {
			_ = t.unread(eof)
			break
		}
		buf = append(buf, c)
	}
	for j := len(buf) - 1; j >= 0; j-- {
		_ = t.unread(buf[j])
	}
	return buf, nil
}

// peekExactly is peekMax, but fails with EarlyEOFError if fewer than n
// bytes are available. The stream is unchanged on failure.
func (t *Tokenizer) peekExactly(n int) ([]byte, error) {
	buf, err := t.peekMax(n)
	if err != nil {
		return nil, err
	}
	if len(buf) < n {
		return nil, &EarlyEOFError{Position: t.position}
	}
	return buf, nil
}

// skipOne discards one byte of input, returning false (without error) if
// the source was already at EOF.
func (t *Tokenizer) skipOne() (bool, error) {
	c, err := t.readInput()
	if err != nil {
		return false, err
	}
	return c != eof, nil
}

// skipExactly discards n bytes, returning false as soon as EOF is reached.
func (t *Tokenizer) skipExactly(n int) (bool, error) {
	for i := 0; i < n; i++ {
		ok, err := t.skipOne()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
