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
	"bytes"

	"github.com/josharian/native"
	"github.com/mdlayher/netlink"
)

// decodePorts walks a port list message and returns freshly allocated port
// records. ok is false when the message belongs to a different device or
// carries no port list; the caller must then leave the mirror untouched.
// Malformed entries are logged and skipped, they never fail the decode.
func (c *Context) decodePorts(data []byte) (ports []*Port, ok bool, err error) {
	ad, err := netlink.NewAttributeDecoder(data)
	if err != nil {
		return nil, false, err
	}

	var ifindex uint32

	var sawList bool

	for ad.Next() {
		switch ad.Type() {
		case attrTeamIfindex:
			ifindex = ad.Uint32()
		case attrListPort:
			sawList = true

			var nerr error

			ad.Do(func(b []byte) error {
				items, derr := netlink.NewAttributeDecoder(b)
				if derr != nil {
					nerr = derr
					return nil
				}

				for items.Next() {
					if port := c.decodePortEntry(items); port != nil {
						ports = append(ports, port)
					}
				}

				nerr = items.Err()

				return nil
			})

			if nerr != nil {
				c.log.Error().Err(nerr).Msg("Failed to parse nested port attributes")
			}
		}
	}

	if err := ad.Err(); err != nil {
		return nil, false, err
	}

	if ifindex != c.ifindex || !sawList {
		return nil, false, nil
	}

	return ports, true, nil
}

// decodePortEntry decodes one nested port item. A missing ifindex attribute
// is a decode failure for this entry only.
func (c *Context) decodePortEntry(items *netlink.AttributeDecoder) *Port {
	var (
		port       Port
		haveIndex  bool
		entryError error
	)

	items.Do(func(b []byte) error {
		pa, derr := netlink.NewAttributeDecoder(b)
		if derr != nil {
			entryError = derr
			return nil
		}

		for pa.Next() {
			switch pa.Type() {
			case attrPortIfindex:
				port.Ifindex = pa.Uint32()
				haveIndex = true
			case attrPortChanged:
				port.Changed = true
			case attrPortLinkup:
				port.LinkUp = true
			case attrPortSpeed:
				port.Speed = pa.Uint32()
			case attrPortDuplex:
				port.Duplex = Duplex(pa.Uint8())
			}
		}

		entryError = pa.Err()

		return nil
	})

	if entryError != nil {
		c.log.Error().Err(entryError).Msg("Failed to parse port entry attributes")
		return nil
	}

	if !haveIndex {
		c.log.Error().Msg("Port entry is missing the ifindex attribute")
		return nil
	}

	return &port
}

// decodeOptions walks an option list message and returns freshly allocated
// option records. Semantics mirror decodePorts; additionally a later entry
// duplicating an earlier name is dropped, first-seen wins.
func (c *Context) decodeOptions(data []byte) (options []*Option, ok bool, err error) {
	ad, err := netlink.NewAttributeDecoder(data)
	if err != nil {
		return nil, false, err
	}

	var ifindex uint32

	var sawList bool

	seen := make(map[string]struct{})

	for ad.Next() {
		switch ad.Type() {
		case attrTeamIfindex:
			ifindex = ad.Uint32()
		case attrListOption:
			sawList = true

			var nerr error

			ad.Do(func(b []byte) error {
				items, derr := netlink.NewAttributeDecoder(b)
				if derr != nil {
					nerr = derr
					return nil
				}

				for items.Next() {
					option := c.decodeOptionEntry(items)
					if option == nil {
						continue
					}

					if _, dup := seen[option.Name]; dup {
						c.log.Error().Str("option", option.Name).Msg("Option is already in list, dropping duplicate")
						continue
					}

					seen[option.Name] = struct{}{}
					options = append(options, option)
				}

				nerr = items.Err()

				return nil
			})

			if nerr != nil {
				c.log.Error().Err(nerr).Msg("Failed to parse nested option attributes")
			}
		}
	}

	if err := ad.Err(); err != nil {
		return nil, false, err
	}

	if ifindex != c.ifindex || !sawList {
		return nil, false, nil
	}

	return options, true, nil
}

// decodeOptionEntry decodes one nested option item. Name, type and data are
// all required; an unrecognized type code is an unsupported-type failure.
// Every failure is scoped to this entry.
func (c *Context) decodeOptionEntry(items *netlink.AttributeDecoder) *Option {
	var (
		name     string
		haveName bool
		nlaType  uint32
		haveType bool
		data     []byte
		haveData bool
		changed  bool
	)

	var entryError error

	items.Do(func(b []byte) error {
		oa, derr := netlink.NewAttributeDecoder(b)
		if derr != nil {
			entryError = derr
			return nil
		}

		for oa.Next() {
			switch oa.Type() {
			case attrOptionName:
				name = cString(oa.Bytes())
				haveName = true
			case attrOptionChanged:
				changed = true
			case attrOptionType:
				nlaType = oa.Uint32()
				haveType = true
			case attrOptionData:
				data = oa.Bytes()
				haveData = true
			}
		}

		entryError = oa.Err()

		return nil
	})

	if entryError != nil {
		c.log.Error().Err(entryError).Msg("Failed to parse option entry attributes")
		return nil
	}

	if !haveName || !haveType || !haveData {
		c.log.Error().Msg("Option entry is missing a required attribute")
		return nil
	}

	var value OptionValue

	switch nlaType {
	case nlaU32:
		if len(data) < 4 {
			c.log.Error().Str("option", name).Msg("Option data too short for u32")
			return nil
		}

		value = Uint32Value(native.Endian.Uint32(data[:4]))
	case nlaString:
		value = StringValue(cString(data))
	default:
		c.log.Error().Str("option", name).Uint32("nla_type", nlaType).Msg("Unsupported option type received")
		return nil
	}

	return &Option{Name: name, Value: value, Changed: changed}
}

// cString trims everything from the first NUL, matching the kernel's
// NUL-terminated string attributes.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	return string(b)
}

// nullTerminated renders s the way the kernel expects string attributes,
// with the terminating NUL included in the payload length.
func nullTerminated(s string) []byte {
	return append([]byte(s), 0)
}
