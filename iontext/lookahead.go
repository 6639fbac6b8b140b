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

// isStopChar reports whether c is a valid way to end an unquoted value. '/'
// is conditionally a stop character: it only terminates an adjacent token
// if it begins a comment. This peeks one byte ahead when c == '/', so don't
// call it with a character you've already peeked without consuming.
func (t *Tokenizer) isStopChar(c byte) (bool, error) {
	if isBareStopChar(c) {
		return true, nil
	}
	if c != '/' {
		return false, nil
	}

	c2, err := t.peekOneLax()
	if err != nil {
		return false, err
	}
	return c2 == '/' || c2 == '*', nil
}

// isTripleQuote is called just after reading a '\''; it reports whether the
// next two bytes are also '\'', consuming them if so. Running out of input
// while peeking is not an error here, it just means this isn't a triple
// quote.
func (t *Tokenizer) isTripleQuote() (bool, error) {
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

// isInfinity is called just after reading a '+' or '-'; it reports whether
// the rest of "inf" follows, cleanly terminated by EOF, a stop character,
// or the start of a comment, consuming the "inf" if so.
func (t *Tokenizer) isInfinity() (bool, error) {
	cs, err := t.peekMax(5)
	if err != nil {
		return false, err
	}

	if len(cs) < 3 || cs[0] != 'i' || cs[1] != 'n' || cs[2] != 'f' {
		return false, nil
	}

	// len(cs) == 3 means EOF followed immediately; that counts as a clean
	// stop, same as any other stop character.
	if len(cs) == 3 || isBareStopChar(cs[3]) {
		_, err := t.skipExactly(3)
		return err == nil, err
	}

	if cs[3] == '/' && len(cs) > 4 && (cs[4] == '/' || cs[4] == '*') {
		_, err := t.skipExactly(3)
		return err == nil, err
	}

	return false, nil
}

// numberShape attempts to determine, from a bounded look-ahead, what kind
// of numeric literal follows the digit c that was just read. It can rule
// out binary, hex, and timestamps; anything else is reported as Number and
// left for the reader layered above to fully classify while reading it.
func (t *Tokenizer) numberShape(c byte) (Kind, error) {
	cs, err := t.peekMax(4)
	if err != nil {
		return Invalid, err
	}

	if c == '0' && len(cs) > 0 {
		switch cs[0] {
		case 'b', 'B':
			return Binary, nil
		case 'x', 'X':
			return Hex, nil
		}
	}

	if len(cs) >= 4 && isDigit(cs[0]) && isDigit(cs[1]) && isDigit(cs[2]) {
		if cs[3] == '-' || cs[3] == 'T' {
			return Timestamp, nil
		}
	}

	return Number, nil
}

// dotFollower classifies what immediately follows a '.' that was just read,
// without consuming it (the caller unreads '.' itself as appropriate).
func (t *Tokenizer) dotFollower() (byte, error) {
	return t.peekOneLax()
}
