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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinishNoOpWhenAlreadyFinished(t *testing.T) {
	tok := NewFromString("foo::bar")
	require.NoError(t, tok.Next())
	require.Equal(t, Symbol, tok.CurrentToken())
	require.NoError(t, tok.Next())
	require.Equal(t, DoubleColon, tok.CurrentToken())
	require.True(t, tok.Finished())

	did, err := tok.Finish()
	require.NoError(t, err)
	assert.False(t, did)
}

func TestFinishSkipsUnconsumedPayload(t *testing.T) {
	tok := NewFromString("12345,")
	require.NoError(t, tok.Next())
	require.Equal(t, Number, tok.CurrentToken())
	require.False(t, tok.Finished())

	did, err := tok.Finish()
	require.NoError(t, err)
	assert.True(t, did)
	assert.True(t, tok.Finished())

	require.NoError(t, tok.Next())
	assert.Equal(t, Comma, tok.CurrentToken())
}

func TestSetFinishedSuppressesPayloadSkip(t *testing.T) {
	tok := NewFromString("(a b)")
	require.NoError(t, tok.Next())
	require.Equal(t, OpenParen, tok.CurrentToken())
	require.False(t, tok.Finished())

	tok.SetFinished()
	assert.True(t, tok.Finished())

	require.NoError(t, tok.Next())
	assert.Equal(t, Symbol, tok.CurrentToken())
}
