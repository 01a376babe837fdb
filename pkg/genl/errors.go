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

	"golang.org/x/sys/unix"
)

var (
	// ErrGroupNotFound occurs when a multicast group name does not resolve
	// within the requested family.
	ErrGroupNotFound = errors.New("multicast group not found")
)

// Code is a portable classification of a transport failure, derived from
// the native netlink error codes.
type Code int

const (
	CodeUnknown Code = iota
	CodeNotFound
	CodeAlreadyExists
	CodePermissionDenied
	CodeBusy
	CodeInvalidArgument
	CodeOutOfMemory
	CodeUnsupported
	CodeInterrupted
	CodeRetryable
)

func (c Code) String() string {
	switch c {
	case CodeNotFound:
		return "not found"
	case CodeAlreadyExists:
		return "already exists"
	case CodePermissionDenied:
		return "permission denied"
	case CodeBusy:
		return "busy"
	case CodeInvalidArgument:
		return "invalid argument"
	case CodeOutOfMemory:
		return "out of memory"
	case CodeUnsupported:
		return "unsupported"
	case CodeInterrupted:
		return "interrupted"
	case CodeRetryable:
		return "retryable"
	default:
		return "unknown"
	}
}

// Error is a transport failure carrying its portable classification.
type Error struct {
	Op   string
	Code Code
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("genl %s: %s: %v", e.Op, e.Code, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap classifies err and wraps it as a transport Error. A nil err passes
// through unchanged.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Op: op, Code: classify(err), Err: err}
}

// CodeOf extracts the portable classification from err, classifying raw
// errno values that were never wrapped.
func CodeOf(err error) Code {
	var terr *Error
	if errors.As(err, &terr) {
		return terr.Code
	}

	return classify(err)
}

// classify maps native error codes onto the portable set. Unrecognized
// errors classify as CodeUnknown.
func classify(err error) Code {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return CodeUnknown
	}

	switch errno {
	case unix.ENOENT, unix.ENODEV, unix.EADDRNOTAVAIL:
		return CodeNotFound
	case unix.EEXIST:
		return CodeAlreadyExists
	case unix.EACCES, unix.EPERM:
		return CodePermissionDenied
	case unix.EBUSY:
		return CodeBusy
	case unix.EINVAL, unix.ERANGE, unix.ENOTSOCK:
		return CodeInvalidArgument
	case unix.ENOMEM, unix.ENOBUFS:
		return CodeOutOfMemory
	case unix.EOPNOTSUPP, unix.EPROTONOSUPPORT, unix.EAFNOSUPPORT:
		return CodeUnsupported
	case unix.EINTR:
		return CodeInterrupted
	case unix.EAGAIN:
		return CodeRetryable
	default:
		return CodeUnknown
	}
}
