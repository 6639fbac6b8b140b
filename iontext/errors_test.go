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
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessagesMentionPosition(t *testing.T) {
	assert.Contains(t, (&UnexpectedCharError{Byte: 'x', Position: 3}).Error(), "3")
	assert.Contains(t, (&EarlyEOFError{Position: 7}).Error(), "7")
	assert.Contains(t, (&CommentInLobError{Position: 1}).Error(), "1")
	assert.Contains(t, (&UnterminatedCommentError{Position: 2}).Error(), "2")
	assert.Contains(t, (&NegativeTimestampError{Position: 9}).Error(), "9")
	assert.Equal(t, "iontext: unread called at position 0", (&UnreadAtStartError{}).Error())
}

func TestIOErrorUnwrapsToUnderlyingCause(t *testing.T) {
	wrapped := wrapIOError(io.ErrClosedPipe)

	var ioErr *IOError
	require.True(t, errors.As(wrapped, &ioErr))
	assert.Same(t, io.ErrClosedPipe, ioErr.Unwrap())
	assert.True(t, errors.Is(wrapped, io.ErrClosedPipe))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestReadInputWrapsSourceError(t *testing.T) {
	tok := New(failingReader{})
	_, err := tok.readInput()
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.ErrClosedPipe))
}
