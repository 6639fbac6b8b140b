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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// nextKinds drives Next to completion and returns the sequence of token
// kinds observed, relying on skipValue to move past whatever payload the
// test never explicitly consumed.
func nextKinds(t *testing.T, src string) []Kind {
	t.Helper()
	tok := NewFromString(src)
	var kinds []Kind
	for {
		require.NoError(t, tok.Next())
		kinds = append(kinds, tok.CurrentToken())
		if tok.CurrentToken() == EOF {
			return kinds
		}
	}
}

func TestSkipNumberVariants(t *testing.T) {
	for _, src := range []string{
		"123 456",
		"-123 456",
		"1.5 456",
		"1.5e10 456",
		"1.5d-10 456",
		"1_234 456",
		"1_234.5_6e1_0 456",
	} {
		t.Run(src, func(t *testing.T) {
			kinds := nextKinds(t, src)
			require.Equal(t, []Kind{Number, Number, EOF}, kinds)
		})
	}
}

func TestSkipNumberRejectsBadUnderscorePlacement(t *testing.T) {
	for _, src := range []string{
		"12__34 ",
		"1234_ ",
	} {
		t.Run(src, func(t *testing.T) {
			tok := NewFromString(src)
			require.NoError(t, tok.Next())
			require.Equal(t, Number, tok.CurrentToken())

			// The bad underscore is only seen when the payload is skipped.
			err := tok.Next()
			var unexpected *UnexpectedCharError
			require.True(t, errors.As(err, &unexpected))
		})
	}
}

func TestSkipRadixVariants(t *testing.T) {
	kinds := nextKinds(t, "0b1010 0xFF_FF 0b10_10 1")
	require.Equal(t, []Kind{Binary, Hex, Binary, Number, EOF}, kinds)
}

func TestSkipRadixRejectsBadUnderscorePlacement(t *testing.T) {
	for _, src := range []string{
		"0xFF__FF ",
		"0xFF_ ",
	} {
		t.Run(src, func(t *testing.T) {
			tok := NewFromString(src)
			require.NoError(t, tok.Next())
			require.Equal(t, Hex, tok.CurrentToken())

			err := tok.Next()
			var unexpected *UnexpectedCharError
			require.True(t, errors.As(err, &unexpected))
		})
	}
}

func TestSkipTimestampPrecisions(t *testing.T) {
	for _, src := range []string{
		"2020T 1",
		"2020-01T 1",
		"2020-01-01T 1",
		"2020-01-01 1",
		"2020-01-01T00:00Z 1",
		"2020-01-01T00:00:00Z 1",
		"2020-01-01T00:00:00.123Z 1",
		"2020-01-01T00:00:00+00:00 1",
	} {
		t.Run(src, func(t *testing.T) {
			kinds := nextKinds(t, src)
			require.Equal(t, []Kind{Timestamp, Number, EOF}, kinds)
		})
	}
}

func TestSkipSymbolVariants(t *testing.T) {
	kinds := nextKinds(t, "foo 'bar' + - a")
	require.Equal(t, []Kind{Symbol, SymbolQuoted, SymbolOperator, SymbolOperator, Symbol, EOF}, kinds)
}

func TestSkipStringVariants(t *testing.T) {
	kinds := nextKinds(t, `"hello \"world\"" 'long''' `)
	require.Equal(t, String, kinds[0])
}

func TestSkipBlobPayload(t *testing.T) {
	kinds := nextKinds(t, "{{ aGVsbG8= }} 1")
	require.Equal(t, []Kind{OpenDoubleBrace, Number, EOF}, kinds)
}

func TestSkipContainerNestedStruct(t *testing.T) {
	// OpenBrace is classified finished, so auto-skip-on-Next never applies
	// to a struct; skipping its body is always an explicit SkipContainer
	// call (see TestSkipContainerOverStruct for the plain case).
	tok := NewFromString(`{a:[1,2,{b:"x"}], c:(1 2)} 9`)
	require.NoError(t, tok.Next())
	require.Equal(t, OpenBrace, tok.CurrentToken())

	require.NoError(t, tok.SkipContainer(OpenBrace))

	require.NoError(t, tok.Next())
	require.Equal(t, Number, tok.CurrentToken())
}

func TestSkipContainerListAutoSkipsNestedStructAndSexp(t *testing.T) {
	// A list is unfinished by default, so Next's automatic skip walks right
	// over the nested struct and sexp inside it without help.
	kinds := nextKinds(t, `[1,2,{b:"x"},(1 2)] 9`)
	require.Equal(t, []Kind{OpenBracket, Number, EOF}, kinds)
}

func TestSkipContainerWithNestedBlob(t *testing.T) {
	kinds := nextKinds(t, "[{{aGk=}}, 1] 2")
	require.Equal(t, []Kind{OpenBracket, Number, EOF}, kinds)
}

func TestSkipLongStringAdjacentSegments(t *testing.T) {
	kinds := nextKinds(t, "'''a''' '''b''' 9")
	require.Equal(t, []Kind{LongString, LongString, Number, EOF}, kinds)
}
