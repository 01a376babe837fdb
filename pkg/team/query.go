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
	"github.com/mdlayher/netlink"

	"github.com/teamnl/teamnl/pkg/genl"
)

// query sends one command on the control channel and blocks until the
// kernel acknowledges it, feeding every valid reply through decode. At most
// one query is in flight per Context; concurrent callers must serialize
// externally, matching the single-owner model. A failed send returns the
// transport failure immediately with no decode callback invoked. The
// returned error, if any, carries a genl portable classification.
func (c *Context) query(cmd uint8, data []byte, decode func(msg genl.Message) error) error {
	if c.control == nil {
		return ErrNotInitialized
	}

	replies, err := c.control.Execute(cmd, netlink.Acknowledge, data)
	if err != nil {
		return err
	}

	if decode == nil {
		return nil
	}

	for _, msg := range replies {
		if err := decode(msg); err != nil {
			return err
		}
	}

	return nil
}

// encodeIfindex builds the request payload shared by every list query.
func (c *Context) encodeIfindex() ([]byte, error) {
	ae := netlink.NewAttributeEncoder()
	ae.Uint32(attrTeamIfindex, c.ifindex)

	return ae.Encode()
}

// RefreshPorts queries the kernel for the current port list, atomically
// replaces the mirrored port collection and dispatches pending port
// change notifications.
func (c *Context) RefreshPorts() error {
	data, err := c.encodeIfindex()
	if err != nil {
		return err
	}

	if err := c.query(cmdPortListGet, data, c.applyPortList); err != nil {
		return err
	}

	c.dispatch(PortChange)

	return nil
}

// RefreshOptions queries the kernel for the current option list, atomically
// replaces the mirrored option collection and dispatches pending option
// change notifications.
func (c *Context) RefreshOptions() error {
	data, err := c.encodeIfindex()
	if err != nil {
		return err
	}

	if err := c.query(cmdOptionsGet, data, c.applyOptionList); err != nil {
		return err
	}

	c.dispatch(OptionChange)

	return nil
}

// applyPortList decodes one port list message and swaps the mirror when the
// message targets the bound device. Decode failures are logged and
// recovered; they never fail the surrounding query.
func (c *Context) applyPortList(msg genl.Message) error {
	ports, ok, err := c.decodePorts(msg.Data)
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to decode port list message")
		return nil
	}

	if !ok {
		return nil
	}

	c.ports = ports
	c.markPending(PortChange)

	return nil
}

// applyOptionList is the option counterpart of applyPortList.
func (c *Context) applyOptionList(msg genl.Message) error {
	options, ok, err := c.decodeOptions(msg.Data)
	if err != nil {
		c.log.Error().Err(err).Msg("Failed to decode option list message")
		return nil
	}

	if !ok {
		return nil
	}

	c.options = options
	c.markPending(OptionChange)

	return nil
}
