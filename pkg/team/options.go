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

import (
	"fmt"

	"github.com/mdlayher/netlink"
)

// Options returns the current snapshot of the option collection, with the
// same snapshot semantics as Ports.
func (c *Context) Options() []*Option {
	return c.options
}

// OptionByName finds a mirrored option by name. A miss returns nil; it is
// an expected outcome, not an error.
func (c *Context) OptionByName(name string) *Option {
	for _, option := range c.options {
		if option.Name == name {
			return option
		}
	}

	return nil
}

// OptionUint32 returns the value of the named u32 option.
func (c *Context) OptionUint32(name string) (uint32, error) {
	option := c.OptionByName(name)
	if option == nil {
		return 0, fmt.Errorf("option %q: %w", name, ErrNotFound)
	}

	v, ok := option.Value.(Uint32Value)
	if !ok {
		return 0, fmt.Errorf("option %q: %w", name, ErrOptionType)
	}

	return uint32(v), nil
}

// OptionString returns the value of the named string option.
func (c *Context) OptionString(name string) (string, error) {
	option := c.OptionByName(name)
	if option == nil {
		return "", fmt.Errorf("option %q: %w", name, ErrNotFound)
	}

	v, ok := option.Value.(StringValue)
	if !ok {
		return "", fmt.Errorf("option %q: %w", name, ErrOptionType)
	}

	return string(v), nil
}

// SetOption writes one option on the kernel side, round-tripping through
// the same attribute layout the read path decodes. The mirror is not
// updated optimistically: the new value arrives through the change
// notification or the next refresh.
func (c *Context) SetOption(name string, value OptionValue) error {
	data, err := encodeSetOption(c.ifindex, name, value)
	if err != nil {
		return err
	}

	return c.query(cmdOptionsSet, data, nil)
}

// SetOptionUint32 sets the named option to an unsigned 32-bit value.
func (c *Context) SetOptionUint32(name string, value uint32) error {
	return c.SetOption(name, Uint32Value(value))
}

// SetOptionString sets the named option to a string value.
func (c *Context) SetOptionString(name, value string) error {
	return c.SetOption(name, StringValue(value))
}

// ModeName returns the current team mode, for example "roundrobin" or
// "activebackup".
func (c *Context) ModeName() (string, error) {
	return c.OptionString("mode")
}

// SetModeName switches the team mode.
func (c *Context) SetModeName(mode string) error {
	return c.SetOptionString("mode", mode)
}

// ActivePort returns the ifindex of the active port. Only meaningful in
// "activebackup" mode.
func (c *Context) ActivePort() (uint32, error) {
	return c.OptionUint32("activeport")
}

// SetActivePort selects a new active port by ifindex. Only meaningful in
// "activebackup" mode.
func (c *Context) SetActivePort(ifindex uint32) error {
	return c.SetOptionUint32("activeport", ifindex)
}

// encodeSetOption builds the OPTIONS_SET payload: the device ifindex plus a
// single-entry option list mirroring the read-side layout.
func encodeSetOption(ifindex uint32, name string, value OptionValue) ([]byte, error) {
	ae := netlink.NewAttributeEncoder()
	ae.Uint32(attrTeamIfindex, ifindex)
	ae.Nested(attrListOption, func(le *netlink.AttributeEncoder) error {
		le.Nested(attrItemOption, func(oe *netlink.AttributeEncoder) error {
			oe.Bytes(attrOptionName, nullTerminated(name))

			switch v := value.(type) {
			case Uint32Value:
				oe.Uint32(attrOptionType, nlaU32)
				oe.Uint32(attrOptionData, uint32(v))
			case StringValue:
				oe.Uint32(attrOptionType, nlaString)
				oe.Bytes(attrOptionData, nullTerminated(string(v)))
			default:
				return fmt.Errorf("option %q: %w", name, ErrOptionType)
			}

			return nil
		})

		return nil
	})

	return ae.Encode()
}
