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

import "strconv"

// ChangeType is a bitmask classifying which collections a decode cycle
// touched. Handlers declare interest through the same mask.
type ChangeType uint32

const (
	// PortChange marks a refresh of the port collection.
	PortChange ChangeType = 1 << iota

	// OptionChange marks a refresh of the option collection.
	OptionChange
)

// AnyChange matches every change type.
const AnyChange = PortChange | OptionChange

// Duplex is the link duplex mode of a port.
type Duplex uint8

const (
	DuplexHalf Duplex = 0
	DuplexFull Duplex = 1
)

func (d Duplex) String() string {
	if d == DuplexFull {
		return "full"
	}

	return "half"
}

// Port is one team member device as reported by the kernel. Ports are
// rebuilt wholesale on every successful port list decode; callers must not
// hold onto records across refreshes.
type Port struct {
	Ifindex uint32
	Speed   uint32 // Mbit/s
	Duplex  Duplex
	LinkUp  bool
	Changed bool // set when this decode cycle altered the record
}

// OptionType tags the payload variant held by an option value.
type OptionType int

const (
	OptionTypeUint32 OptionType = iota + 1
	OptionTypeString
)

func (t OptionType) String() string {
	switch t {
	case OptionTypeUint32:
		return "u32"
	case OptionTypeString:
		return "string"
	default:
		return "invalid"
	}
}

// OptionValue is the tagged value of a team option. Exactly two variants
// exist: Uint32Value and StringValue.
type OptionValue interface {
	// OptionType reports which variant this value is.
	OptionType() OptionType

	// String renders the payload for display.
	String() string
}

// Uint32Value is the unsigned 32-bit integer option variant.
type Uint32Value uint32

func (Uint32Value) OptionType() OptionType { return OptionTypeUint32 }

func (v Uint32Value) String() string { return strconv.FormatUint(uint64(v), 10) }

// StringValue is the UTF-8 string option variant.
type StringValue string

func (StringValue) OptionType() OptionType { return OptionTypeString }

func (v StringValue) String() string { return string(v) }

// Option is one configurable knob of the team device. Identity is the name,
// unique within a collection.
type Option struct {
	Name    string
	Value   OptionValue
	Changed bool
}

// ChangeHandler is a callback registered for change notifications. The
// struct value's address is its registration identity: registering the same
// pointer twice fails, distinct pointers with equal contents do not collide.
type ChangeHandler struct {
	// Func receives the intersection of the handler's interest and the
	// change types being delivered. It runs on the caller's goroutine.
	Func func(c *Context, priv interface{}, changed ChangeType)

	// Priv is passed through to Func untouched.
	Priv interface{}

	// TypeMask declares which change types this handler cares about.
	TypeMask ChangeType
}
