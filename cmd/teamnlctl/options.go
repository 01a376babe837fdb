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
)

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options <device>",
		Short: "List the options of a team device",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := openContext(args[0])
			if err != nil {
				return err
			}
			defer c.Close()

			for _, option := range c.Options() {
				fmt.Printf("%s (%s) = %s\n",
					option.Name, option.Value.OptionType(), option.Value)
			}

			return nil
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <device> <option>",
		Short: "Print one option value",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := openContext(args[0])
			if err != nil {
				return err
			}
			defer c.Close()

			option := c.OptionByName(args[1])
			if option == nil {
				return fmt.Errorf("option %q: %w", args[1], errOptionNotFound)
			}

			fmt.Println(option.Value)

			return nil
		},
	}
}
