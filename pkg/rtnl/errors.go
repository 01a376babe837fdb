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

package rtnl

import "errors"

var (
	// ErrEmptyName occurs when a device operation is given no name.
	ErrEmptyName = errors.New("device name is empty")

	// ErrNoDevice occurs when an operation is given a zero interface index.
	ErrNoDevice = errors.New("invalid interface index")

	// ErrNoHwAddr occurs when an interface carries no hardware address.
	ErrNoHwAddr = errors.New("interface has no hardware address")
)
