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

// matcher is a predicate over a single input byte (or the EOF sentinel 0).
type matcher func(byte) bool

// isWhitespace reports whether c is Ion whitespace. CR never reaches here
// because readInput normalizes CRLF and lone CR to LF before a caller ever
// sees the byte.
func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isHexDigit reports whether c is a valid hex digit.
func isHexDigit(c byte) bool {
	if isDigit(c) {
		return true
	}
	if c >= 'a' && c <= 'f' {
		return true
	}
	if c >= 'A' && c <= 'F' {
		return true
	}
	return false
}

// isIdentifierStart reports whether c may begin an unquoted symbol.
func isIdentifierStart(c byte) bool {
	if c >= 'a' && c <= 'z' {
		return true
	}
	if c >= 'A' && c <= 'Z' {
		return true
	}
	return c == '_' || c == '$'
}

// isIdentifierPart reports whether c may appear after the first character
// of an unquoted symbol.
func isIdentifierPart(c byte) bool {
	return isIdentifierStart(c) || isDigit(c)
}

// isOperatorChar reports whether c is one of the characters that can make
// up an operator-symbol.
func isOperatorChar(c byte) bool {
	switch c {
	case '!', '#', '%', '&', '*', '+', '-', '.', '/', ';', '<', '=',
		'>', '?', '@', '^', '`', '|', '~':
		return true
	default:
		return false
	}
}

// isBareStopChar reports whether c terminates an adjacent unquoted token on
// its own, without needing to look at the byte that follows it. It does not
// handle '/', which is a stop character only conditionally (see
// (*Tokenizer).isStopChar); use that method, not this function, unless c was
// obtained by a peek you already intend to act on regardless.
func isBareStopChar(c byte) bool {
	switch c {
	case eof, '{', '}', '[', ']', '(', ')', ',', '"', '\'',
		' ', '\t', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}
