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

// Ports returns the current snapshot of the port collection. The returned
// slice is the snapshot itself: a later refresh swaps in a new slice, so an
// iteration started before the refresh keeps seeing the old records and
// never a mix of both.
func (c *Context) Ports() []*Port {
	return c.ports
}

// PortByIfindex finds a mirrored port by interface index. A miss returns
// nil; it is an expected outcome, not an error.
func (c *Context) PortByIfindex(ifindex uint32) *Port {
	for _, port := range c.ports {
		if port.Ifindex == ifindex {
			return port
		}
	}

	return nil
}
