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
	"github.com/spf13/cobra"

	"github.com/teamnl/teamnl/pkg/rtnl"
)

func newCreateCmd() *cobra.Command {
	var flagRecreate bool

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new team device",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if flagRecreate {
				return rtnl.RecreateTeam(args[0])
			}

			return rtnl.CreateTeam(args[0])
		},
	}

	cmd.Flags().BoolVar(&flagRecreate, "recreate", false,
		"Delete an existing device of the same name first")

	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <device>",
		Short: "Delete a team device",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ifindex, err := resolveDevice(args[0])
			if err != nil {
				return err
			}

			return rtnl.DeleteTeam(ifindex)
		},
	}
}

func newPortAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "port-add <device> <port>",
		Short: "Enslave an interface to a team device",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			teamIfindex, err := resolveDevice(args[0])
			if err != nil {
				return err
			}

			portIfindex, err := resolveDevice(args[1])
			if err != nil {
				return err
			}

			return rtnl.PortAdd(teamIfindex, portIfindex)
		},
	}
}

func newPortRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "port-remove <port>",
		Short: "Release an interface from its team device",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			portIfindex, err := resolveDevice(args[0])
			if err != nil {
				return err
			}

			return rtnl.PortRemove(portIfindex)
		},
	}
}
