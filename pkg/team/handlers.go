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

// RegisterHandler adds a change handler. The handler pointer is its
// identity: registering the same pointer twice fails with
// ErrAlreadyRegistered and leaves the existing registration untouched.
// Delivery order across handlers is unspecified.
func (c *Context) RegisterHandler(h *ChangeHandler) error {
	if _, ok := c.handlers[h]; ok {
		return ErrAlreadyRegistered
	}

	c.handlers[h] = struct{}{}

	return nil
}

// UnregisterHandler removes a change handler. Removing an unknown handler
// is a no-op.
func (c *Context) UnregisterHandler(h *ChangeHandler) {
	delete(c.handlers, h)
}

// markPending accumulates change types awaiting dispatch. Both the query
// path and the event path write here.
func (c *Context) markPending(mask ChangeType) {
	c.pending |= mask
}

// dispatch delivers pending change types covered by mask to every handler
// whose interest intersects them, then clears exactly mask's bits from the
// pending set. Bits outside mask survive untouched, so an interleaved
// change of another type is never lost.
func (c *Context) dispatch(mask ChangeType) {
	toCall := c.pending & mask

	if toCall != 0 {
		for h := range c.handlers {
			if m := h.TypeMask & toCall; m != 0 {
				c.callHandler(h, m)
			}
		}
	}

	c.pending &^= mask
}

// callHandler isolates handler failures: one panicking handler must not
// rob the remaining handlers of their notification.
func (c *Context) callHandler(h *ChangeHandler, mask ChangeType) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Msg("Change handler panicked")
		}
	}()

	h.Func(c, h.Priv, mask)
}
