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

import "fmt"

// skipValue skips to the end of the payload of the current token, for the
// case where the caller asked for another token (via Next) before
// finishing the one it already had. It returns the first byte after the
// payload and any whitespace or comments that follow it; Next dispatches on
// that byte directly and Finish unreads it.
func (t *Tokenizer) skipValue() (byte, error) {
	var c byte
	var err error

	switch t.currentToken {
	case Number:
		c, err = t.skipNumber()
	case Binary:
		c, err = t.skipRadix(isBMarker, isBinaryDigit)
	case Hex:
		c, err = t.skipRadix(isXMarker, isHexDigit)
	case Timestamp:
		c, err = t.skipTimestamp()
	case Symbol:
		c, err = t.skipSymbol()
	case SymbolQuoted:
		c, err = t.skipSymbolQuoted()
	case SymbolOperator:
		c, err = t.skipSymbolOperator()
	case String:
		c, err = t.skipString()
	case LongString:
		c, err = t.skipLongString()
	case OpenDoubleBrace:
		c, err = t.skipBlob()
	case OpenBrace:
		c, err = t.skipContainer('}')
	case OpenParen:
		c, err = t.skipContainer(')')
	case OpenBracket:
		c, err = t.skipContainer(']')
	default:
		panic(fmt.Sprintf("iontext: skipValue called with current token %v", t.currentToken))
	}
	if err != nil {
		return 0, err
	}

	if isWhitespace(c) {
		c, err = t.skipWhitespaceSkippingComments()
		if err != nil {
			return 0, err
		}
	}

	t.finished = true
	return c, nil
}

// SkipContainer skips forward past the contents of a struct, sexp, or list
// the caller has decided not to step into, leaving the tokenizer positioned
// right after the matching close token. kind must be OpenBrace, OpenParen,
// or OpenBracket.
func (t *Tokenizer) SkipContainer(kind Kind) error {
	var term byte
	switch kind {
	case OpenBrace:
		term = '}'
	case OpenParen:
		term = ')'
	case OpenBracket:
		term = ']'
	default:
		panic(fmt.Sprintf("iontext: SkipContainer called with non-container kind %v", kind))
	}
	c, err := t.skipContainer(term)
	if err != nil {
		return err
	}
	if err := t.unread(c); err != nil {
		return err
	}
	t.finished = true
	return nil
}

func isBMarker(c byte) bool {
	return c == 'b' || c == 'B'
}

func isXMarker(c byte) bool {
	return c == 'x' || c == 'X'
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

// expect reads one byte and asserts it matches f, failing with
// UnexpectedCharError otherwise.
func (t *Tokenizer) expect(f matcher) error {
	c, err := t.readInput()
	if err != nil {
		return err
	}
	if !f(c) {
		return t.invalidChar(c)
	}
	return nil
}

// invalidChar builds the error for a byte that cannot legally appear where
// it was found.
func (t *Tokenizer) invalidChar(c byte) error {
	if c == eof {
		return &EarlyEOFError{Position: t.position - 1}
	}
	return &UnexpectedCharError{Byte: c, Position: t.position - 1}
}

// skipDigitRun consumes a run of digits valid per isValidDigit, freshly
// reading each byte (the caller is responsible for any leading digit it
// already read and validated itself). A single '_' is permitted between
// digits as a separator: it is legal only when immediately followed by
// another valid digit, and is itself discarded rather than counted. A
// leading, trailing, or doubled underscore is a hard error.
func (t *Tokenizer) skipDigitRun(isValidDigit matcher) (byte, error) {
	for {
		c, err := t.readInput()
		if err != nil {
			return 0, err
		}
		if c == '_' {
			next, err := t.peekOneLax()
			if err != nil {
				return 0, err
			}
			if !isValidDigit(next) {
				return 0, t.invalidChar(c)
			}
			continue
		}
		if !isValidDigit(c) {
			return c, nil
		}
	}
}

// skipNumber skips a (non-binary, non-hex) numeric literal: an optional
// leading '-', a digit run, an optional '.'-led fractional digit run, and
// an optional exponent. Underscores may separate digits within any of the
// three digit runs.
func (t *Tokenizer) skipNumber() (byte, error) {
	c, err := t.readInput()
	if err != nil {
		return 0, err
	}
	if c == '-' {
		if c, err = t.readInput(); err != nil {
			return 0, err
		}
	}

	if isDigit(c) {
		if c, err = t.skipDigitRun(isDigit); err != nil {
			return 0, err
		}
	}

	if c == '.' {
		if c, err = t.readInput(); err != nil {
			return 0, err
		}
		if isDigit(c) {
			if c, err = t.skipDigitRun(isDigit); err != nil {
				return 0, err
			}
		}
	}

	if c == 'd' || c == 'D' || c == 'e' || c == 'E' {
		if c, err = t.readInput(); err != nil {
			return 0, err
		}
		if c == '+' || c == '-' {
			if c, err = t.readInput(); err != nil {
				return 0, err
			}
		}
		if isDigit(c) {
			if c, err = t.skipDigitRun(isDigit); err != nil {
				return 0, err
			}
		}
	}

	ok, err := t.isStopChar(c)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, t.invalidChar(c)
	}
	return c, nil
}

// skipRadix skips a "0<marker><digits>" literal (binary or hex).
func (t *Tokenizer) skipRadix(isMarker, isValidDigit matcher) (byte, error) {
	c, err := t.readInput()
	if err != nil {
		return 0, err
	}
	if c == '-' {
		if c, err = t.readInput(); err != nil {
			return 0, err
		}
	}
	if c != '0' {
		return 0, t.invalidChar(c)
	}
	if err := t.expect(isMarker); err != nil {
		return 0, err
	}
	if err := t.expect(isValidDigit); err != nil {
		return 0, err
	}

	c, err = t.skipDigitRun(isValidDigit)
	if err != nil {
		return 0, err
	}

	ok, err := t.isStopChar(c)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, t.invalidChar(c)
	}
	return c, nil
}

func (t *Tokenizer) skipTimestampDigits(n int) (byte, error) {
	for ; n > 0; n-- {
		if err := t.expect(isDigit); err != nil {
			return 0, err
		}
	}
	return t.readInput()
}

func (t *Tokenizer) skipTimestampOffset(c byte) (byte, error) {
	if c != '-' && c != '+' {
		return c, nil
	}
	c, err := t.skipTimestampDigits(2)
	if err != nil {
		return 0, err
	}
	if c != ':' {
		return 0, t.invalidChar(c)
	}
	return t.skipTimestampDigits(2)
}

func (t *Tokenizer) skipTimestampOffsetOrZ(c byte) (byte, error) {
	if c == '-' || c == '+' {
		return t.skipTimestampOffset(c)
	}
	if c == 'z' || c == 'Z' {
		return t.readInput()
	}
	return 0, t.invalidChar(c)
}

func (t *Tokenizer) skipTimestampFinish(c byte) (byte, error) {
	ok, err := t.isStopChar(c)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, t.invalidChar(c)
	}
	return c, nil
}

// skipTimestamp skips a timestamp literal in any of its valid precisions,
// from a bare year to fractional seconds with a zone offset.
func (t *Tokenizer) skipTimestamp() (byte, error) {
	c, err := t.skipTimestampDigits(4) // yyyy
	if err != nil {
		return 0, err
	}
	if c == 'T' {
		return t.readInput()
	}
	if c != '-' {
		return 0, t.invalidChar(c)
	}

	if c, err = t.skipTimestampDigits(2); err != nil { // mm
		return 0, err
	}
	if c == 'T' {
		return t.readInput()
	}
	if c != '-' {
		return 0, t.invalidChar(c)
	}

	if c, err = t.skipTimestampDigits(2); err != nil { // dd
		return 0, err
	}
	if c != 'T' {
		return t.skipTimestampFinish(c)
	}

	if c, err = t.readInput(); err != nil {
		return 0, err
	}
	if !isDigit(c) {
		if c, err = t.skipTimestampOffset(c); err != nil {
			return 0, err
		}
		return t.skipTimestampFinish(c)
	}

	if c, err = t.skipTimestampDigits(1); err != nil { // hh (first digit already read)
		return 0, err
	}
	if c != ':' {
		return 0, t.invalidChar(c)
	}

	if c, err = t.skipTimestampDigits(2); err != nil { // mm
		return 0, err
	}
	if c != ':' {
		if c, err = t.skipTimestampOffsetOrZ(c); err != nil {
			return 0, err
		}
		return t.skipTimestampFinish(c)
	}

	if c, err = t.skipTimestampDigits(2); err != nil { // ss
		return 0, err
	}
	if c != '.' {
		if c, err = t.skipTimestampOffsetOrZ(c); err != nil {
			return 0, err
		}
		return t.skipTimestampFinish(c)
	}

	if c, err = t.readInput(); err != nil { // fractional seconds
		return 0, err
	}
	if isDigit(c) {
		if c, err = t.skipDigitRun(isDigit); err != nil {
			return 0, err
		}
	}

	if c, err = t.skipTimestampOffsetOrZ(c); err != nil {
		return 0, err
	}
	return t.skipTimestampFinish(c)
}

// skipSymbol skips an unquoted symbol and returns the terminating byte.
func (t *Tokenizer) skipSymbol() (byte, error) {
	c, err := t.readInput()
	if err != nil {
		return 0, err
	}
	for isIdentifierPart(c) {
		if c, err = t.readInput(); err != nil {
			return 0, err
		}
	}
	return c, nil
}

// skipSymbolQuoted skips a 'quoted symbol' and returns the byte after the
// closing quote.
func (t *Tokenizer) skipSymbolQuoted() (byte, error) {
	if err := t.skipQuotedRun('\''); err != nil {
		return 0, err
	}
	return t.readInput()
}

// skipQuotedRun skips bytes up to (and including) an unescaped occurrence
// of closer, used by both short strings and quoted symbols. A raw newline
// or EOF before the closer is a syntax error.
func (t *Tokenizer) skipQuotedRun(closer byte) error {
	for {
		c, err := t.readInput()
		if err != nil {
			return err
		}
		switch c {
		case eof, '\n':
			return t.invalidChar(c)
		case closer:
			return nil
		case '\\':
			if _, err := t.readInput(); err != nil {
				return err
			}
		}
	}
}

// skipSymbolOperator skips a run of operator characters.
func (t *Tokenizer) skipSymbolOperator() (byte, error) {
	c, err := t.readInput()
	if err != nil {
		return 0, err
	}
	for isOperatorChar(c) {
		if c, err = t.readInput(); err != nil {
			return 0, err
		}
	}
	return c, nil
}

// skipString skips a "short string" and returns the byte after the
// closing quote.
func (t *Tokenizer) skipString() (byte, error) {
	if err := t.skipQuotedRun('"'); err != nil {
		return 0, err
	}
	return t.readInput()
}

// skipLongString skips one '''long string''' and returns the byte after its
// closing triple-quote. An adjacent long string that concatenates onto this
// one is not absorbed here; it comes back from the next Next call as its own
// LongString token, and joining the two values is the reader's business.
func (t *Tokenizer) skipLongString() (byte, error) {
	if err := t.skipLongStringBody(); err != nil {
		return 0, err
	}
	return t.readInput()
}

func (t *Tokenizer) skipLongStringBody() error {
	for {
		c, err := t.readInput()
		if err != nil {
			return err
		}
		switch c {
		case eof:
			return t.invalidChar(c)
		case '\'':
			done, err := t.skipEndOfLongString()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		case '\\':
			if _, err := t.readInput(); err != nil {
				return err
			}
		}
	}
}

// skipEndOfLongString is called right after reading a single '\''. It
// determines whether this is the closing triple-quote of the long string or
// just a lone quote inside the text, consuming the two remaining quotes if
// it is the close.
func (t *Tokenizer) skipEndOfLongString() (done bool, err error) {
	cs, err := t.peekMax(2)
	if err != nil {
		return false, err
	}
	if len(cs) < 2 || cs[0] != '\'' || cs[1] != '\'' {
		return false, nil
	}
	if _, err := t.skipExactly(2); err != nil {
		return false, err
	}
	return true, nil
}

// skipBlob skips a {{ ... }} blob or clob payload and returns the byte
// after the two closing braces.
func (t *Tokenizer) skipBlob() (byte, error) {
	if err := t.skipBlobBody(); err != nil {
		return 0, err
	}
	return t.readInput()
}

// skipBlobBody stops right after the two closing braces.
func (t *Tokenizer) skipBlobBody() error {
	c, err := t.skipLobWhitespace()
	if err != nil {
		return err
	}
	for c != '}' {
		if c == eof {
			return t.invalidChar(c)
		}
		c, err = t.skipLobWhitespace()
		if err != nil {
			return err
		}
	}
	return t.expect(func(c byte) bool { return c == '}' })
}

// skipContainer skips forward through a struct/sexp/list body, respecting
// nested strings, quoted symbols, and containers, and returns the byte
// right after the matching terminator.
func (t *Tokenizer) skipContainer(term byte) (byte, error) {
	if err := t.skipContainerBody(term); err != nil {
		return 0, err
	}
	return t.readInput()
}

func (t *Tokenizer) skipContainerBody(term byte) error {
	for {
		c, err := t.skipWhitespaceSkippingComments()
		if err != nil {
			return err
		}

		switch {
		case c == eof:
			return t.invalidChar(c)

		case c == term:
			return nil

		case c == '"':
			if err := t.skipQuotedRun('"'); err != nil {
				return err
			}

		case c == '\'':
			ok, err := t.isTripleQuote()
			if err != nil {
				return err
			}
			if ok {
				if err := t.skipLongStringBody(); err != nil {
					return err
				}
			} else if err := t.skipQuotedRun('\''); err != nil {
				return err
			}

		case c == '(':
			if err := t.skipContainerBody(')'); err != nil {
				return err
			}

		case c == '[':
			if err := t.skipContainerBody(']'); err != nil {
				return err
			}

		case c == '{':
			c2, err := t.peekOneLax()
			if err != nil {
				return err
			}
			if c2 == '{' {
				if _, err := t.readInput(); err != nil {
					return err
				}
				if err := t.skipBlobBody(); err != nil {
					return err
				}
			} else if err := t.skipContainerBody('}'); err != nil {
				return err
			}
		}
	}
}
