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

// Package genl wraps the generic netlink transport used to talk to kernel
// subsystems. It resolves families and multicast groups by name and exposes
// a narrow connection surface that higher layers and tests can stand in for.
package genl

import (
	"fmt"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"
)

// Message is one generic netlink message: a family command plus its
// attribute payload. Replies and notifications share this shape.
type Message struct {
	Command uint8
	Data    []byte
}

// Conn is a single channel to a generic netlink family. A control channel
// uses Execute for request/response; an event channel uses Receive to drain
// multicast notifications and FD to integrate with external poll loops.
type Conn interface {
	// Execute sends one request and blocks until the kernel acknowledges it,
	// returning any reply messages. The kernel rejecting the request or the
	// send/receive failing is reported as an error.
	Execute(cmd uint8, flags netlink.HeaderFlags, data []byte) ([]Message, error)

	// Receive blocks for the next batch of messages on this channel.
	Receive() ([]Message, error)

	// FD returns the underlying socket descriptor for readiness polling.
	FD() int

	Close() error
}

type conn struct {
	c      *genetlink.Conn
	family genetlink.Family
	fd     int
}

// Dial opens a control channel to the named generic netlink family.
func Dial(family string) (Conn, error) {
	return dial(family, "")
}

// DialEvent opens an event channel to the named family and subscribes it to
// the named multicast group.
func DialEvent(family, group string) (Conn, error) {
	if group == "" {
		return nil, Wrap("dial", ErrGroupNotFound)
	}

	return dial(family, group)
}

func dial(family, group string) (Conn, error) {
	c, err := genetlink.Dial(nil)
	if err != nil {
		return nil, Wrap("dial", err)
	}

	f, err := c.GetFamily(family)
	if err != nil {
		_ = c.Close()
		return nil, Wrap("resolve family", err)
	}

	if group != "" {
		id, ok := groupID(f, group)
		if !ok {
			_ = c.Close()
			return nil, Wrap("resolve group", fmt.Errorf("%w: %q", ErrGroupNotFound, group))
		}

		if err := c.JoinGroup(id); err != nil {
			_ = c.Close()
			return nil, Wrap("join group", err)
		}
	}

	fd, err := socketFD(c)
	if err != nil {
		_ = c.Close()
		return nil, Wrap("socket fd", err)
	}

	return &conn{c: c, family: f, fd: fd}, nil
}

func groupID(f genetlink.Family, name string) (uint32, bool) {
	for _, g := range f.Groups {
		if g.Name == name {
			return g.ID, true
		}
	}

	return 0, false
}

func socketFD(c *genetlink.Conn) (int, error) {
	raw, err := c.SyscallConn()
	if err != nil {
		return -1, err
	}

	fd := -1
	if err := raw.Control(func(rawFD uintptr) {
		fd = int(rawFD)
	}); err != nil {
		return -1, err
	}

	return fd, nil
}

func (c *conn) Execute(cmd uint8, flags netlink.HeaderFlags, data []byte) ([]Message, error) {
	req := genetlink.Message{
		Header: genetlink.Header{
			Command: cmd,
			Version: c.family.Version,
		},
		Data: data,
	}

	replies, err := c.c.Execute(req, c.family.ID, netlink.Request|flags)
	if err != nil {
		return nil, Wrap("execute", err)
	}

	return convert(replies), nil
}

func (c *conn) Receive() ([]Message, error) {
	msgs, _, err := c.c.Receive()
	if err != nil {
		return nil, Wrap("receive", err)
	}

	return convert(msgs), nil
}

func (c *conn) FD() int { return c.fd }

func (c *conn) Close() error {
	return c.c.Close()
}

func convert(in []genetlink.Message) []Message {
	out := make([]Message, 0, len(in))
	for _, m := range in {
		out = append(out, Message{Command: m.Header.Command, Data: m.Data})
	}

	return out
}
