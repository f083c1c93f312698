/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendBitsToBuffer(t *testing.T) {
	bb := make(bitBuffer, 0)

	bb.appendBits(0, 0)
	assert.Equal(t, 0, len(bb))

	bb.appendBits(1, 1)
	assert.Equal(t, []byte{1}, []byte(bb))

	bb.appendBits(0, 1)
	assert.Equal(t, []byte{1, 0}, []byte(bb))

	bb.appendBits(5, 3)
	assert.Equal(t, []byte{1, 0, 1, 0, 1}, []byte(bb))

	bb.appendBits(6, 3)
	assert.Equal(t, []byte{1, 0, 1, 0, 1, 1, 1, 0}, []byte(bb))
}

func TestBitBufferExtendAndGet(t *testing.T) {
	bb := make(bitBuffer, 0)
	bb.appendBits(0b101, 3)

	other := make(bitBuffer, 0)
	other.appendBits(0b11, 2)
	bb.extend(other)

	assert.Equal(t, []byte{1, 0, 1, 1, 1}, []byte(bb))
	for i, want := range []byte{1, 0, 1, 1, 1} {
		assert.Equal(t, want, bb.get(i))
	}
}

func TestBitBufferBytes(t *testing.T) {
	bb := make(bitBuffer, 0)
	bb.appendBits(0xA5, 8)
	bb.appendBits(0x0F, 4)

	got := bb.bytes()
	assert.Equal(t, []byte{0xA5, 0xF0}, got)
}

func TestBitsFromBytes(t *testing.T) {
	bb := bitsFromBytes([]byte{0xA5})
	assert.Equal(t, 8, len(bb))
	assert.Equal(t, []byte{0xA5}, bb.bytes())
}

func TestBitBufferPadTo(t *testing.T) {
	bb := make(bitBuffer, 0)
	bb.appendBits(0x1, 4) // 4 bits used; pad to 32.
	bb.padTo(32)

	assert.Equal(t, 32, len(bb))
	got := bb.bytes()
	// 4-bit terminator zero-fills the rest of the first byte, then pad
	// bytes 0xEC, 0x11 alternate until the target length.
	assert.Equal(t, []byte{0x10, 0xEC, 0x11, 0xEC}, got)
}

func TestBitBufferPadToShortOfFullTerminator(t *testing.T) {
	bb := make(bitBuffer, 0)
	bb.appendBits(0, 30)
	bb.padTo(32) // Only 2 bits of room: terminator is truncated, not overrun.

	assert.Equal(t, 32, len(bb))
}
