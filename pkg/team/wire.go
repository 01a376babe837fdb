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

// Generic netlink identity of the team family, from linux/if_team.h.
const (
	// FamilyName is the generic netlink family registered by the team driver.
	FamilyName = "team"

	// EventGroupName is the multicast group carrying change notifications.
	EventGroupName = "change_event"
)

// Team family commands.
const (
	cmdNoop        = 0 // TEAM_CMD_NOOP
	cmdOptionsSet  = 1 // TEAM_CMD_OPTIONS_SET
	cmdOptionsGet  = 2 // TEAM_CMD_OPTIONS_GET
	cmdPortListGet = 3 // TEAM_CMD_PORT_LIST_GET
)

// Top-level message attributes.
const (
	attrTeamIfindex = 1 // TEAM_ATTR_TEAM_IFINDEX, u32
	attrListOption  = 2 // TEAM_ATTR_LIST_OPTION, nested
	attrListPort    = 3 // TEAM_ATTR_LIST_PORT, nested
)

// Nested list item wrappers.
const (
	attrItemOption = 1 // TEAM_ATTR_ITEM_OPTION, nested
	attrItemPort   = 1 // TEAM_ATTR_ITEM_PORT, nested
)

// Option entry attributes.
const (
	attrOptionName    = 1 // TEAM_ATTR_OPTION_NAME, string
	attrOptionChanged = 2 // TEAM_ATTR_OPTION_CHANGED, flag
	attrOptionType    = 3 // TEAM_ATTR_OPTION_TYPE, u32 holding an NLA_* code
	attrOptionData    = 4 // TEAM_ATTR_OPTION_DATA, dynamic
)

// Port entry attributes.
const (
	attrPortIfindex = 1 // TEAM_ATTR_PORT_IFINDEX, u32
	attrPortChanged = 2 // TEAM_ATTR_PORT_CHANGED, flag
	attrPortLinkup  = 3 // TEAM_ATTR_PORT_LINKUP, flag
	attrPortSpeed   = 4 // TEAM_ATTR_PORT_SPEED, u32
	attrPortDuplex  = 5 // TEAM_ATTR_PORT_DUPLEX, u8
)

// Netlink attribute type codes the option TYPE attribute may carry. Only
// NLA_U32 and NLA_STRING are produced by the driver today.
const (
	nlaU32    = 3
	nlaString = 5
)
