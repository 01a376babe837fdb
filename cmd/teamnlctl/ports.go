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

	"github.com/spf13/cobra"

	"github.com/teamnl/teamnl/pkg/rtnl"
	"github.com/teamnl/teamnl/pkg/team"
)

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports <device>",
		Short: "List the member ports of a team device",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := openContext(args[0])
			if err != nil {
				return err
			}
			defer c.Close()

			for _, port := range c.Ports() {
				printPort(port)
			}

			return nil
		},
	}
}

func printPort(port *team.Port) {
	name := rtnl.IndexToIfname(port.Ifindex)
	if name == "" {
		name = "?"
	}

	link := "down"
	if port.LinkUp {
		link = "up"
	}

	fmt.Printf("%d: %s: %dMbit %s-duplex link %s\n",
		port.Ifindex, name, port.Speed, port.Duplex, link)
}
