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

// teamnlctl inspects and controls Linux team devices over generic netlink.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagLogLevel string

var rootCmd = &cobra.Command{
	Use:   "teamnlctl",
	Short: "Inspect and control Linux network team devices",
	Long: `teamnlctl talks to the kernel team driver over generic netlink. It mirrors
the port and option state of a team device, watches change notifications and
writes option values, plus the route netlink helpers to create team devices
and enslave ports.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "",
		"Minimum log level (debug, info, warn, error); TEAM_LOG is honored when unset")

	rootCmd.AddCommand(
		newPortsCmd(),
		newOptionsCmd(),
		newGetCmd(),
		newSetCmd(),
		newMonitorCmd(),
		newCreateCmd(),
		newDeleteCmd(),
		newPortAddCmd(),
		newPortRemoveCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "teamnlctl: %v\n", err)
		os.Exit(1)
	}
}
