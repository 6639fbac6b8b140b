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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipWhitespaceSkippingComments(t *testing.T) {
	test := func(in string, want byte) {
		t.Run(in, func(t *testing.T) {
			tok := NewFromString(in)
			c, err := tok.skipWhitespaceSkippingComments()
			require.NoError(t, err)
			assert.Equal(t, want, c)
		})
	}

	test("   a", 'a')
	test("// line comment\na", 'a')
	test("/* block */a", 'a')
	test("  /* multi\nline */  a", 'a')
	test("a", 'a')
	test("", eof)
}

func TestSkipWhitespaceUnterminatedBlockComment(t *testing.T) {
	tok := NewFromString("/* never closes")
	_, err := tok.skipWhitespaceSkippingComments()
	var unterminated *UnterminatedCommentError
	require.True(t, errors.As(err, &unterminated))
}

func TestSkipWhitespaceFailOnComment(t *testing.T) {
	tok := NewFromString("/not a comment")
	_, err := tok.skipWhitespaceFailOnComment()
	var inLob *CommentInLobError
	require.True(t, errors.As(err, &inLob))
}

func TestSkipWhitespacePassThroughStopsAtSlash(t *testing.T) {
	tok := NewFromString("  /abc")
	c, err := tok.skipWhitespacePassThrough()
	require.NoError(t, err)
	assert.Equal(t, byte('/'), c)
}

func TestSkipLineCommentEOFTerminates(t *testing.T) {
	tok := NewFromString("// trailing comment, no newline")
	c, err := tok.skipWhitespaceSkippingComments()
	require.NoError(t, err)
	assert.Equal(t, eof, c)
}
