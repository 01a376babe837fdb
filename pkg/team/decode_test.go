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
	"testing"

	"github.com/mdlayher/netlink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamnl/teamnl/pkg/logger"
)

func newTestContext(t *testing.T, ifindex uint32) *Context {
	t.Helper()

	c, err := New(&Config{Logger: logger.NewTestLogger()})
	require.NoError(t, err)

	c.ifindex = ifindex

	return c
}

// encodePortList builds a port list message payload the way the kernel
// does: device ifindex plus nested item entries.
func encodePortList(t *testing.T, teamIfindex uint32, entries ...func(*netlink.AttributeEncoder)) []byte {
	t.Helper()

	ae := netlink.NewAttributeEncoder()
	ae.Uint32(attrTeamIfindex, teamIfindex)
	ae.Nested(attrListPort, func(le *netlink.AttributeEncoder) error {
		for _, entry := range entries {
			entry := entry
			le.Nested(attrItemPort, func(pe *netlink.AttributeEncoder) error {
				entry(pe)
				return nil
			})
		}

		return nil
	})

	data, err := ae.Encode()
	require.NoError(t, err)

	return data
}

// encodeOptionList is the option counterpart of encodePortList.
func encodeOptionList(t *testing.T, teamIfindex uint32, entries ...func(*netlink.AttributeEncoder)) []byte {
	t.Helper()

	ae := netlink.NewAttributeEncoder()
	ae.Uint32(attrTeamIfindex, teamIfindex)
	ae.Nested(attrListOption, func(le *netlink.AttributeEncoder) error {
		for _, entry := range entries {
			entry := entry
			le.Nested(attrItemOption, func(oe *netlink.AttributeEncoder) error {
				entry(oe)
				return nil
			})
		}

		return nil
	})

	data, err := ae.Encode()
	require.NoError(t, err)

	return data
}

func stringOptionEntry(name, value string) func(*netlink.AttributeEncoder) {
	return func(oe *netlink.AttributeEncoder) {
		oe.Bytes(attrOptionName, nullTerminated(name))
		oe.Uint32(attrOptionType, nlaString)
		oe.Bytes(attrOptionData, nullTerminated(value))
	}
}

func uint32OptionEntry(name string, value uint32) func(*netlink.AttributeEncoder) {
	return func(oe *netlink.AttributeEncoder) {
		oe.Bytes(attrOptionName, nullTerminated(name))
		oe.Uint32(attrOptionType, nlaU32)
		oe.Uint32(attrOptionData, value)
	}
}

func TestDecodePortsTwoEntries(t *testing.T) {
	c := newTestContext(t, 42)

	data := encodePortList(t, 42,
		func(pe *netlink.AttributeEncoder) {
			pe.Uint32(attrPortIfindex, 3)
			pe.Uint32(attrPortSpeed, 1000)
			pe.Uint8(attrPortDuplex, uint8(DuplexFull))
			pe.Bytes(attrPortLinkup, nil)
		},
		func(pe *netlink.AttributeEncoder) {
			pe.Uint32(attrPortIfindex, 5)
		},
	)

	ports, ok, err := c.decodePorts(data)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, ports, 2)

	assert.Equal(t, &Port{Ifindex: 3, Speed: 1000, Duplex: DuplexFull, LinkUp: true}, ports[0])
	assert.Equal(t, &Port{Ifindex: 5, Speed: 0, Duplex: DuplexHalf, LinkUp: false}, ports[1])
	assert.False(t, ports[0].Changed)
	assert.False(t, ports[1].Changed)
}

func TestDecodePortsChangedFlag(t *testing.T) {
	c := newTestContext(t, 42)

	data := encodePortList(t, 42, func(pe *netlink.AttributeEncoder) {
		pe.Uint32(attrPortIfindex, 3)
		pe.Bytes(attrPortChanged, nil)
	})

	ports, ok, err := c.decodePorts(data)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, ports, 1)
	assert.True(t, ports[0].Changed)
}

func TestDecodePortsMissingIfindexSkipsEntry(t *testing.T) {
	c := newTestContext(t, 42)

	data := encodePortList(t, 42,
		func(pe *netlink.AttributeEncoder) {
			pe.Uint32(attrPortSpeed, 100) // no ifindex
		},
		func(pe *netlink.AttributeEncoder) {
			pe.Uint32(attrPortIfindex, 7)
		},
	)

	ports, ok, err := c.decodePorts(data)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, ports, 1)
	assert.Equal(t, uint32(7), ports[0].Ifindex)
}

func TestDecodePortsOtherDeviceIgnored(t *testing.T) {
	c := newTestContext(t, 42)

	data := encodePortList(t, 99, func(pe *netlink.AttributeEncoder) {
		pe.Uint32(attrPortIfindex, 3)
	})

	ports, ok, err := c.decodePorts(data)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, ports)
}

func TestDecodePortsNoListIgnored(t *testing.T) {
	c := newTestContext(t, 42)

	ae := netlink.NewAttributeEncoder()
	ae.Uint32(attrTeamIfindex, 42)
	data, err := ae.Encode()
	require.NoError(t, err)

	_, ok, err := c.decodePorts(data)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecodeOptionsStringOption(t *testing.T) {
	c := newTestContext(t, 42)

	data := encodeOptionList(t, 42, stringOptionEntry("mode", "activebackup"))

	options, ok, err := c.decodeOptions(data)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, options, 1)

	assert.Equal(t, "mode", options[0].Name)
	assert.Equal(t, OptionTypeString, options[0].Value.OptionType())
	assert.Equal(t, StringValue("activebackup"), options[0].Value)
	assert.False(t, options[0].Changed)
}

func TestDecodeOptionsUint32Option(t *testing.T) {
	c := newTestContext(t, 42)

	data := encodeOptionList(t, 42, uint32OptionEntry("activeport", 7))

	options, ok, err := c.decodeOptions(data)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, options, 1)

	assert.Equal(t, OptionTypeUint32, options[0].Value.OptionType())
	assert.Equal(t, Uint32Value(7), options[0].Value)
}

func TestDecodeOptionsDuplicateFirstSeenWins(t *testing.T) {
	c := newTestContext(t, 42)

	data := encodeOptionList(t, 42,
		uint32OptionEntry("activeport", 3),
		uint32OptionEntry("activeport", 9),
		stringOptionEntry("mode", "roundrobin"),
	)

	options, ok, err := c.decodeOptions(data)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, options, 2)

	assert.Equal(t, "activeport", options[0].Name)
	assert.Equal(t, Uint32Value(3), options[0].Value)
	assert.Equal(t, "mode", options[1].Name)
}

func TestDecodeOptionsMissingRequiredSkips(t *testing.T) {
	tests := []struct {
		name  string
		entry func(*netlink.AttributeEncoder)
	}{
		{
			name: "missing name",
			entry: func(oe *netlink.AttributeEncoder) {
				oe.Uint32(attrOptionType, nlaU32)
				oe.Uint32(attrOptionData, 1)
			},
		},
		{
			name: "missing type",
			entry: func(oe *netlink.AttributeEncoder) {
				oe.Bytes(attrOptionName, nullTerminated("x"))
				oe.Uint32(attrOptionData, 1)
			},
		},
		{
			name: "missing data",
			entry: func(oe *netlink.AttributeEncoder) {
				oe.Bytes(attrOptionName, nullTerminated("x"))
				oe.Uint32(attrOptionType, nlaU32)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, 42)

			data := encodeOptionList(t, 42, tt.entry, stringOptionEntry("mode", "loadbalance"))

			options, ok, err := c.decodeOptions(data)
			require.NoError(t, err)
			require.True(t, ok)
			require.Len(t, options, 1)
			assert.Equal(t, "mode", options[0].Name)
		})
	}
}

func TestDecodeOptionsUnsupportedTypeSkips(t *testing.T) {
	c := newTestContext(t, 42)

	data := encodeOptionList(t, 42,
		func(oe *netlink.AttributeEncoder) {
			oe.Bytes(attrOptionName, nullTerminated("weird"))
			oe.Uint32(attrOptionType, 4) // NLA_U64, not produced by the driver
			oe.Uint32(attrOptionData, 1)
		},
		uint32OptionEntry("activeport", 2),
	)

	options, ok, err := c.decodeOptions(data)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, options, 1)
	assert.Equal(t, "activeport", options[0].Name)
}

func TestDecodeOptionsOtherDeviceIgnored(t *testing.T) {
	c := newTestContext(t, 42)

	data := encodeOptionList(t, 7, stringOptionEntry("mode", "activebackup"))

	options, ok, err := c.decodeOptions(data)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, options)
}

func TestCString(t *testing.T) {
	assert.Equal(t, "abc", cString([]byte("abc\x00")))
	assert.Equal(t, "abc", cString([]byte("abc")))
	assert.Equal(t, "", cString([]byte{0}))
	assert.Equal(t, "ab", cString([]byte("ab\x00cd")))
}
