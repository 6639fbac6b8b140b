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

// Next advances to the next token. If the payload of the previous token was
// never consumed by the caller, it is skipped first. Next returns nil for
// any successful classification, including EOF. It fails when the next byte
// cannot begin or continue any valid token, and also with any error raised
// while skipping the previous payload or looking ahead (for example
// EarlyEOFError, CommentInLobError, NegativeTimestampError, or IOError).
func (t *Tokenizer) Next() error {
	var c byte
	var err error

	if !t.finished {
		c, err = t.skipValue()
	} else {
		c, err = t.skipWhitespaceSkippingComments()
	}
	if err != nil {
		return err
	}

	return t.dispatch(c)
}

func (t *Tokenizer) setToken(kind Kind, finished bool) error {
	t.currentToken = kind
	t.finished = finished
	return nil
}

// dispatch classifies the byte c (already read, with any inter-token
// whitespace and comments already skipped) as the start of a token.
func (t *Tokenizer) dispatch(c byte) error {
	switch {
	case c == eof:
		return t.setToken(EOF, true)

	case c == ':':
		c2, err := t.peekOneLax()
		if err != nil {
			return err
		}
		if c2 == ':' {
			if _, err := t.readInput(); err != nil {
				return err
			}
			return t.setToken(DoubleColon, true)
		}
		return t.setToken(Colon, true)

	case c == '{':
		c2, err := t.peekOneLax()
		if err != nil {
			return err
		}
		if c2 == '{' {
			if _, err := t.readInput(); err != nil {
				return err
			}
			return t.setToken(OpenDoubleBrace, false)
		}
		return t.setToken(OpenBrace, true)

	case c == '}':
		return t.setToken(CloseBrace, true)

	case c == '[':
		return t.setToken(OpenBracket, false)

	case c == ']':
		return t.setToken(CloseBracket, true)

	case c == '(':
		return t.setToken(OpenParen, false)

	case c == ')':
		return t.setToken(CloseParen, true)

	case c == ',':
		return t.setToken(Comma, true)

	case c == '.':
		return t.dispatchDot()

	case c == '\'':
		ok, err := t.isTripleQuote()
		if err != nil {
			return err
		}
		if ok {
			return t.setToken(LongString, false)
		}
		return t.setToken(SymbolQuoted, false)

	case c == '+':
		ok, err := t.isInfinity()
		if err != nil {
			return err
		}
		if ok {
			return t.setToken(FloatInf, true)
		}
		if err := t.unread(c); err != nil {
			return err
		}
		return t.setToken(SymbolOperator, false)

	case c == '-':
		return t.dispatchMinus(c)

	case isOperatorChar(c):
		if err := t.unread(c); err != nil {
			return err
		}
		return t.setToken(SymbolOperator, false)

	case c == '"':
		return t.setToken(String, false)

	case isIdentifierStart(c):
		if err := t.unread(c); err != nil {
			return err
		}
		return t.setToken(Symbol, false)

	case isDigit(c):
		shape, err := t.numberShape(c)
		if err != nil {
			return err
		}
		if err := t.unread(c); err != nil {
			return err
		}
		return t.setToken(shape, false)

	default:
		return t.invalidChar(c)
	}
}

// dispatchDot implements the '.' look-ahead, using dotFollower (in
// lookahead.go) to peek: followed by an operator character, '.' starts an operator
// symbol (so it's unread to be re-read as part of that run); followed by
// anything else, it's a bare Dot token and the follower — never actually
// consumed, since dotFollower only peeks — is left exactly where it was.
func (t *Tokenizer) dispatchDot() error {
	c2, err := t.dotFollower()
	if err != nil {
		return err
	}
	if isOperatorChar(c2) {
		if err := t.unread('.'); err != nil {
			return err
		}
		return t.setToken(SymbolOperator, false)
	}
	return t.setToken(Dot, true)
}

// dispatchMinus implements the '-' look-ahead: a following digit might
// start a negative number (or, if it's timestamp-shaped, an error, since
// Ion has no negative timestamps); failing that, "-inf" is tried; failing
// that, '-' is an operator-symbol character.
func (t *Tokenizer) dispatchMinus(minus byte) error {
	c2, err := t.peekOneLax()
	if err != nil {
		return err
	}

	if isDigit(c2) {
		if _, err := t.readInput(); err != nil {
			return err
		}
		shape, err := t.numberShape(c2)
		if err != nil {
			return err
		}
		if shape == Timestamp {
			return &NegativeTimestampError{Position: t.position - 1}
		}
		if err := t.unread(c2); err != nil {
			return err
		}
		if err := t.unread(minus); err != nil {
			return err
		}
		return t.setToken(shape, false)
	}

	ok, err := t.isInfinity()
	if err != nil {
		return err
	}
	if ok {
		return t.setToken(FloatMinusInf, true)
	}

	if err := t.unread(minus); err != nil {
		return err
	}
	return t.setToken(SymbolOperator, false)
}
