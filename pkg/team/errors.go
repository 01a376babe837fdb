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

package team

import "errors"

var (
	// ErrNotFound occurs on a lookup miss by port ifindex or option name.
	// It is an expected outcome, never logged.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyRegistered occurs when a change handler identity is
	// registered a second time.
	ErrAlreadyRegistered = errors.New("change handler already registered")

	// ErrNoDevice occurs when Init is given a zero interface index.
	ErrNoDevice = errors.New("invalid team device interface index")

	// ErrNotInitialized occurs when an operation needs a channel that Init
	// has not established.
	ErrNotInitialized = errors.New("context not initialized")

	// ErrOptionType occurs when a typed accessor does not match the
	// option's actual variant.
	ErrOptionType = errors.New("option value has different type")
)
