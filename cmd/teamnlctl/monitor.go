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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/teamnl/teamnl/pkg/team"
)

func newMonitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monitor <device>",
		Short: "Watch a team device for port and option changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := openContext(args[0])
			if err != nil {
				return err
			}
			defer c.Close()

			handler := &team.ChangeHandler{
				Func:     printChanges,
				TypeMask: team.AnyChange,
			}

			if err := c.RegisterHandler(handler); err != nil {
				return err
			}

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, unix.SIGTERM)
			defer signal.Stop(stop)

			fd := c.EventFD()

			for {
				select {
				case <-stop:
					return nil
				default:
				}

				fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

				n, err := unix.Poll(fds, pollTimeoutMs)
				if err == unix.EINTR {
					continue
				}

				if err != nil {
					return err
				}

				if n > 0 && fds[0].Revents&unix.POLLIN != 0 {
					if err := c.ProcessEvent(); err != nil {
						return err
					}
				}
			}
		},
	}
}

const pollTimeoutMs = 500

func printChanges(c *team.Context, _ interface{}, changed team.ChangeType) {
	if changed&team.PortChange != 0 {
		for _, port := range c.Ports() {
			if port.Changed {
				printPort(port)
			}
		}
	}

	if changed&team.OptionChange != 0 {
		for _, option := range c.Options() {
			if option.Changed {
				fmt.Printf("%s = %s\n", option.Name, option.Value)
			}
		}
	}
}
