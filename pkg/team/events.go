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
	"golang.org/x/sys/unix"

	"github.com/teamnl/teamnl/pkg/genl"
)

// EventFD returns the event channel's socket descriptor so callers can feed
// it to their own poll loop. It is only valid after Init and returns -1
// before then.
func (c *Context) EventFD() int {
	if c.events == nil {
		return -1
	}

	return c.events.FD()
}

// ProcessEvent performs one blocking receive on the event channel, decodes
// the notifications it carried and dispatches all pending change types.
// Call it only when the event descriptor is readable, or accept blocking.
func (c *Context) ProcessEvent() error {
	if c.events == nil {
		return ErrNotInitialized
	}

	msgs, err := c.events.Receive()
	if err != nil {
		return err
	}

	for _, msg := range msgs {
		c.handleEvent(msg)
	}

	c.dispatch(AnyChange)

	return nil
}

// handleEvent routes one notification by command. Notifications share the
// reply layout of the corresponding list query.
func (c *Context) handleEvent(msg genl.Message) {
	switch msg.Command {
	case cmdPortListGet:
		_ = c.applyPortList(msg)
	case cmdOptionsGet:
		_ = c.applyOptionList(msg)
	}
}

// CheckEvents drains the event channel without ever blocking: while a
// zero-timeout poll reports the descriptor readable it processes one event,
// and it returns as soon as the channel is quiet. A transport failure stops
// the drain and is surfaced to the caller.
func (c *Context) CheckEvents() error {
	if c.events == nil {
		return ErrNotInitialized
	}

	fd := c.events.FD()

	for {
		ready, err := fdReadable(fd)
		if err != nil {
			return genl.Wrap("poll", err)
		}

		if !ready {
			return nil
		}

		if err := c.ProcessEvent(); err != nil {
			return err
		}
	}
}

// fdReadable reports whether fd is readable right now. EINTR restarts the
// poll.
func fdReadable(fd int) (bool, error) {
	for {
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

		n, err := unix.Poll(fds, 0)
		if err == unix.EINTR {
			continue
		}

		if err != nil {
			return false, err
		}

		return n > 0 && fds[0].Revents&unix.POLLIN != 0, nil
	}
}
