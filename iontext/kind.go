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

// Kind is a tagged enumeration of the lexical categories the tokenizer can
// classify the next token as.
type Kind int

const (
	// Invalid is the sentinel value: classification has never succeeded.
	Invalid Kind = iota

	// EOF means there is no more input.
	EOF

	Symbol         // unquoted identifier-style symbol
	SymbolQuoted   // 'foo'
	SymbolOperator // run of operator characters used as a symbol

	String     // "foo"
	LongString // '''foo''' (an adjacent long string is a separate LongString token)

	Number // decimal integer or decimal/real number, shape undetermined
	Binary // 0b101
	Hex    // 0xFF

	Timestamp // 2020-01-01T00:00:00Z, or a truncated prefix thereof

	FloatInf      // +inf
	FloatMinusInf // -inf

	Dot         // .
	Comma       // ,
	Colon       // :
	DoubleColon // ::

	OpenBrace       // {
	CloseBrace      // }
	OpenDoubleBrace // {{ (there is no matching token for the close; the
	// lob reader absorbs the closing "}}" itself)

	OpenBracket  // [
	CloseBracket // ]

	OpenParen  // (
	CloseParen // )
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "<invalid>"
	case EOF:
		return "<EOF>"
	case Symbol:
		return "<symbol>"
	case SymbolQuoted:
		return "<quoted-symbol>"
	case SymbolOperator:
		return "<operator>"
	case String:
		return "<string>"
	case LongString:
		return "<long-string>"
	case Number:
		return "<number>"
	case Binary:
		return "<binary>"
	case Hex:
		return "<hex>"
	case Timestamp:
		return "<timestamp>"
	case FloatInf:
		return "+inf"
	case FloatMinusInf:
		return "-inf"
	case Dot:
		return "."
	case Comma:
		return ","
	case Colon:
		return ":"
	case DoubleColon:
		return "::"
	case OpenBrace:
		return "{"
	case CloseBrace:
		return "}"
	case OpenDoubleBrace:
		return "{{"
	case OpenBracket:
		return "["
	case CloseBracket:
		return "]"
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	default:
		return "<???>"
	}
}
