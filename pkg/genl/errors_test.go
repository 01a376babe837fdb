/*
 * Copyright 2026 The teamnl Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package genl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestClassifyErrno(t *testing.T) {
	tests := []struct {
		errno unix.Errno
		want  Code
	}{
		{unix.ENOENT, CodeNotFound},
		{unix.ENODEV, CodeNotFound},
		{unix.EADDRNOTAVAIL, CodeNotFound},
		{unix.EEXIST, CodeAlreadyExists},
		{unix.EPERM, CodePermissionDenied},
		{unix.EACCES, CodePermissionDenied},
		{unix.EBUSY, CodeBusy},
		{unix.EINVAL, CodeInvalidArgument},
		{unix.ERANGE, CodeInvalidArgument},
		{unix.ENOTSOCK, CodeInvalidArgument},
		{unix.ENOMEM, CodeOutOfMemory},
		{unix.ENOBUFS, CodeOutOfMemory},
		{unix.EOPNOTSUPP, CodeUnsupported},
		{unix.EPROTONOSUPPORT, CodeUnsupported},
		{unix.EAFNOSUPPORT, CodeUnsupported},
		{unix.EINTR, CodeInterrupted},
		{unix.EAGAIN, CodeRetryable},
		{unix.ECONNREFUSED, CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.errno.Error(), func(t *testing.T) {
			err := Wrap("test", tt.errno)
			assert.Equal(t, tt.want, CodeOf(err))
		})
	}
}

func TestWrapNilPassesThrough(t *testing.T) {
	assert.NoError(t, Wrap("test", nil))
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap("execute", unix.ENOENT)
	require.Error(t, err)

	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, CodeNotFound, terr.Code)
	assert.Equal(t, "execute", terr.Op)
	assert.ErrorIs(t, err, unix.ENOENT)
	assert.Contains(t, err.Error(), "not found")
}

func TestWrapClassifiesWrappedErrno(t *testing.T) {
	cause := fmt.Errorf("send: %w", unix.EACCES)
	assert.Equal(t, CodePermissionDenied, CodeOf(Wrap("execute", cause)))
}

func TestCodeOfUnwrapped(t *testing.T) {
	assert.Equal(t, CodeBusy, CodeOf(unix.EBUSY))
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("no errno here")))
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "not found", CodeNotFound.String())
	assert.Equal(t, "unknown", CodeUnknown.String())
	assert.Equal(t, "unknown", Code(999).String())
}
