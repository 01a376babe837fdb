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

// Package rtnl holds the route netlink helpers around the team client:
// name/index mapping, team device lifecycle, enslaving ports and hardware
// address access.
package rtnl

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
)

const teamLinkKind = "team"

// teamLink satisfies netlink.Link for the team device kind, which the
// library has no richer model for.
type teamLink struct {
	netlink.LinkAttrs
}

func (t *teamLink) Attrs() *netlink.LinkAttrs { return &t.LinkAttrs }
func (*teamLink) Type() string                { return teamLinkKind }

// IfnameToIndex looks up an interface by name. An unknown name reports 0,
// matching the kernel's "no such device" index.
func IfnameToIndex(name string) uint32 {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return 0
	}

	return uint32(link.Attrs().Index)
}

// IndexToIfname looks up an interface name by index. An unknown index
// reports the empty string.
func IndexToIfname(ifindex uint32) string {
	link, err := netlink.LinkByIndex(int(ifindex))
	if err != nil {
		return ""
	}

	return link.Attrs().Name
}

// CreateTeam creates a new team device with the given name.
func CreateTeam(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	link := &teamLink{LinkAttrs: netlink.NewLinkAttrs()}
	link.Name = name

	if err := netlink.LinkAdd(link); err != nil {
		return fmt.Errorf("create team %q: %w", name, err)
	}

	return nil
}

// RecreateTeam creates the named team device, deleting any existing device
// of that name first.
func RecreateTeam(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	if link, err := netlink.LinkByName(name); err == nil {
		if err := netlink.LinkDel(link); err != nil {
			return fmt.Errorf("delete existing %q: %w", name, err)
		}
	}

	return CreateTeam(name)
}

// DeleteTeam removes the team device with the given interface index.
func DeleteTeam(ifindex uint32) error {
	if ifindex == 0 {
		return ErrNoDevice
	}

	link, err := netlink.LinkByIndex(int(ifindex))
	if err != nil {
		return fmt.Errorf("lookup ifindex %d: %w", ifindex, err)
	}

	if err := netlink.LinkDel(link); err != nil {
		return fmt.Errorf("delete ifindex %d: %w", ifindex, err)
	}

	return nil
}

// PortAdd enslaves the port interface to the team device.
func PortAdd(teamIfindex, portIfindex uint32) error {
	port, err := netlink.LinkByIndex(int(portIfindex))
	if err != nil {
		return fmt.Errorf("lookup port %d: %w", portIfindex, err)
	}

	if err := netlink.LinkSetMasterByIndex(port, int(teamIfindex)); err != nil {
		return fmt.Errorf("enslave port %d: %w", portIfindex, err)
	}

	return nil
}

// PortRemove releases the port interface from its team device.
func PortRemove(portIfindex uint32) error {
	port, err := netlink.LinkByIndex(int(portIfindex))
	if err != nil {
		return fmt.Errorf("lookup port %d: %w", portIfindex, err)
	}

	if err := netlink.LinkSetNoMaster(port); err != nil {
		return fmt.Errorf("release port %d: %w", portIfindex, err)
	}

	return nil
}

// HwAddrGet returns the hardware address of the interface with the given
// index.
func HwAddrGet(ifindex uint32) (net.HardwareAddr, error) {
	link, err := netlink.LinkByIndex(int(ifindex))
	if err != nil {
		return nil, fmt.Errorf("lookup ifindex %d: %w", ifindex, err)
	}

	addr := link.Attrs().HardwareAddr
	if len(addr) == 0 {
		return nil, fmt.Errorf("ifindex %d: %w", ifindex, ErrNoHwAddr)
	}

	return addr, nil
}

// HwAddrSet assigns a hardware address to the interface with the given
// index.
func HwAddrSet(ifindex uint32, addr net.HardwareAddr) error {
	link, err := netlink.LinkByIndex(int(ifindex))
	if err != nil {
		return fmt.Errorf("lookup ifindex %d: %w", ifindex, err)
	}

	if err := netlink.LinkSetHardwareAddr(link, addr); err != nil {
		return fmt.Errorf("set hwaddr on %d: %w", ifindex, err)
	}

	return nil
}

// HwAddrLen returns the hardware address length of the interface with the
// given index.
func HwAddrLen(ifindex uint32) (int, error) {
	addr, err := HwAddrGet(ifindex)
	if err != nil {
		return 0, err
	}

	return len(addr), nil
}
