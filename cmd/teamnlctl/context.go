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
	"fmt"
	"strconv"

	"github.com/teamnl/teamnl/pkg/logger"
	"github.com/teamnl/teamnl/pkg/rtnl"
	"github.com/teamnl/teamnl/pkg/team"
)

var errDeviceNotFound = errors.New("team device not found")

// resolveDevice accepts a device name or a raw interface index.
func resolveDevice(dev string) (uint32, error) {
	if n, err := strconv.ParseUint(dev, 10, 32); err == nil && n > 0 {
		return uint32(n), nil
	}

	ifindex := rtnl.IfnameToIndex(dev)
	if ifindex == 0 {
		return 0, fmt.Errorf("%w: %q", errDeviceNotFound, dev)
	}

	return ifindex, nil
}

// openContext builds a team context bound to dev. The caller must Close it.
func openContext(dev string) (*team.Context, error) {
	ifindex, err := resolveDevice(dev)
	if err != nil {
		return nil, err
	}

	log, err := logger.NewFromEnv(logger.Config{Level: flagLogLevel})
	if err != nil {
		return nil, err
	}

	c, err := team.New(&team.Config{Logger: log})
	if err != nil {
		return nil, err
	}

	if err := c.Init(ifindex); err != nil {
		_ = c.Close()
		return nil, err
	}

	return c, nil
}
