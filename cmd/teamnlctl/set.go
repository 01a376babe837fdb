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
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teamnl/teamnl/pkg/team"
)

var errOptionNotFound = errors.New("option not found")

func newSetCmd() *cobra.Command {
	var flagString bool

	cmd := &cobra.Command{
		Use:   "set <device> <option> <value>",
		Short: "Write one option value",
		Long: `Write one option value. A value that parses as an unsigned integer is sent
as a u32 unless --string forces the string variant.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := openContext(args[0])
			if err != nil {
				return err
			}
			defer c.Close()

			return c.SetOption(args[1], parseOptionValue(args[2], flagString))
		},
	}

	cmd.Flags().BoolVar(&flagString, "string", false, "Send the value as a string option")

	return cmd
}

// parseOptionValue picks the option variant for a command line value.
func parseOptionValue(value string, forceString bool) team.OptionValue {
	if !forceString {
		if n, err := strconv.ParseUint(value, 10, 32); err == nil {
			return team.Uint32Value(n)
		}
	}

	return team.StringValue(value)
}
