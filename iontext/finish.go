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

// Finish discards the payload of the current token if it hasn't been
// consumed yet, leaving the tokenizer ready for the next Next call. It
// returns false (with no error) if there was nothing to do because the
// token was already finished.
func (t *Tokenizer) Finish() (bool, error) {
	if t.finished {
		return false, nil
	}

	c, err := t.skipValue()
	if err != nil {
		return true, err
	}
	if err := t.unread(c); err != nil {
		return true, err
	}

	t.finished = true
	return true, nil
}

// SetFinished marks the current token finished without reading its payload,
// for a caller that is stepping into a list, sexp, or struct instead of
// skipping past it: the next Next call should classify whatever comes
// immediately after the container's opening token, not search forward for
// its close.
func (t *Tokenizer) SetFinished() {
	t.finished = true
}
