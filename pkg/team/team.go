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

// Package team is a user-space client for the Linux network teaming driver.
// A Context mirrors the kernel-side port and option state of one team
// device over generic netlink and dispatches change notifications to
// registered handlers.
//
// A Context is single-owner: all methods must be called from one logical
// thread of control. Distinct Contexts are fully independent.
package team

import (
	"fmt"

	"github.com/teamnl/teamnl/pkg/genl"
	"github.com/teamnl/teamnl/pkg/logger"
)

// Config controls Context construction. The zero value is usable: it binds
// the standard team family with a stderr error-level logger.
type Config struct {
	// FamilyName overrides the generic netlink family name.
	FamilyName string

	// EventGroup overrides the change notification multicast group name.
	EventGroup string

	// Logger receives decode and dispatch diagnostics. Defaults to a stderr
	// logger at error level, honoring the TEAM_LOG environment variable.
	Logger logger.Logger
}

// Context is the root aggregate for one managed team device: the collection
// mirror, the change handler set with its pending mask, and the two netlink
// channels (control for request/response, event for notifications).
type Context struct {
	log     logger.Logger
	ifindex uint32

	control genl.Conn
	events  genl.Conn

	ports   []*Port
	options []*Option

	handlers map[*ChangeHandler]struct{}
	pending  ChangeType

	dialControl func() (genl.Conn, error)
	dialEvent   func() (genl.Conn, error)
}

// New creates an unbound Context. Init must be called before any state is
// available.
func New(cfg *Config) (*Context, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger

	if log == nil {
		var err error

		log, err = logger.NewFromEnv(logger.Config{})
		if err != nil {
			return nil, fmt.Errorf("default logger: %w", err)
		}
	}

	family := cfg.FamilyName
	if family == "" {
		family = FamilyName
	}

	group := cfg.EventGroup
	if group == "" {
		group = EventGroupName
	}

	return &Context{
		log:      log,
		handlers: make(map[*ChangeHandler]struct{}),
		dialControl: func() (genl.Conn, error) {
			return genl.Dial(family)
		},
		dialEvent: func() (genl.Conn, error) {
			return genl.DialEvent(family, group)
		},
	}, nil
}

// Init binds the Context to the team device with the given interface index,
// opens both netlink channels and performs the initial port and option
// refresh. If channel setup fails the Context is left unbound and must be
// treated as never constructed; Close remains safe to call.
func (c *Context) Init(ifindex uint32) error {
	if ifindex == 0 {
		return ErrNoDevice
	}

	c.ifindex = ifindex

	control, err := c.dialControl()
	if err != nil {
		return fmt.Errorf("control channel: %w", err)
	}

	events, err := c.dialEvent()
	if err != nil {
		_ = control.Close()
		return fmt.Errorf("event channel: %w", err)
	}

	c.control = control
	c.events = events

	if err := c.RefreshPorts(); err != nil {
		return fmt.Errorf("initial port list: %w", err)
	}

	if err := c.RefreshOptions(); err != nil {
		return fmt.Errorf("initial options: %w", err)
	}

	return nil
}

// Close releases both netlink channels and drops all mirrored state and
// registered handlers. It is safe on a Context whose Init failed.
func (c *Context) Close() error {
	var first error

	if c.control != nil {
		if err := c.control.Close(); err != nil && first == nil {
			first = err
		}

		c.control = nil
	}

	if c.events != nil {
		if err := c.events.Close(); err != nil && first == nil {
			first = err
		}

		c.events = nil
	}

	c.ports = nil
	c.options = nil
	c.handlers = make(map[*ChangeHandler]struct{})
	c.pending = 0

	return first
}

// Ifindex reports the interface index of the bound team device.
func (c *Context) Ifindex() uint32 { return c.ifindex }
