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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAlphanumeric(t *testing.T) {
	cases := []struct {
		answer bool
		text   string
	}{
		{true, ""},
		{true, "0"},
		{true, "A"},
		{false, "a"},
		{true, " "},
		{true, "."},
		{true, "*"},
		{false, ","},
		{false, "|"},
		{false, "@"},
		{true, "XYZ"},
		{false, "XYZ!"},
		{true, "79068"},
		{true, "+123 ABC$"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc.answer, alphanumericRegexp.MatchString(tc.text))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		answer bool
		text   string
	}{
		{true, ""},
		{true, "0"},
		{false, "A"},
		{false, "a"},
		{false, " "},
		{true, "79068"},
		{false, "+123 ABC$"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc.answer, numericRegexp.MatchString(tc.text))
		})
	}
}

func TestMakeBytes(t *testing.T) {
	seg, err := MakeBytes([]byte{})
	assert.NoError(t, err)
	assert.Equal(t, Byte, seg.Mode)
	assert.Equal(t, 0, seg.NumChars)
	assert.Equal(t, []byte{}, []byte(seg.Data))

	seg, err = MakeBytes([]byte{0x00})
	assert.NoError(t, err)
	assert.Equal(t, 1, seg.NumChars)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, []byte(seg.Data))

	seg, err = MakeBytes([]byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM, valid UTF-8.
	assert.NoError(t, err)
	assert.Equal(t, 3, seg.NumChars)
	assert.Equal(t, 24, len(seg.Data))
}

func TestMakeBytesRejectsInvalidUTF8(t *testing.T) {
	_, err := MakeBytes([]byte{0xFF, 0xFE})
	assert.Error(t, err)
	var uce *UnsupportedCharacterError
	assert.ErrorAs(t, err, &uce)
}

func TestMakeNumeric(t *testing.T) {
	cases := []struct {
		text      string
		length    int
		bitLength int
		bytes     []byte
	}{
		{"", 0, 0, []byte{}},
		{"9", 1, 4, []byte{0x1, 0x0, 0x0, 0x1}},
		{"81", 2, 7, []byte{0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x1}},
		{"673", 3, 10, []byte{0x1, 0x0, 0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x0, 0x1}},
		{"3141592653", 10, 34, []byte{0x0, 0x1, 0x0, 0x0, 0x1, 0x1, 0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x1, 0x0, 0x0, 0x1, 0x1, 0x1,
			0x1, 0x1, 0x0, 0x1, 0x0, 0x0, 0x0, 0x0, 0x1, 0x0, 0x0, 0x1, 0x0, 0x0, 0x1, 0x1}},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			seg, err := MakeNumeric(tc.text)
			assert.NoError(t, err)
			assert.Equal(t, Numeric, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bitLength, len(seg.Data))
			assert.Equal(t, tc.bytes, []byte(seg.Data))
		})
	}
}

func TestMakeNumericRejectsNonDigits(t *testing.T) {
	_, err := MakeNumeric("12a")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMakeAlphanumeric(t *testing.T) {
	cases := []struct {
		text      string
		length    int
		bitLength int
		bytes     []byte
	}{
		{"", 0, 0, []byte{}},
		{"A", 1, 6, []byte{0x0, 0x0, 0x1, 0x0, 0x1, 0x0}},
		{"%:", 2, 11, []byte{0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x0}},
		{"Q R", 3, 17, []byte{0x1, 0x0, 0x0, 0x1, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1, 0x0, 0x0, 0x1, 0x1, 0x0, 0x1, 0x1}},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			seg, err := MakeAlphanumeric(tc.text)
			assert.NoError(t, err)
			assert.Equal(t, Alphanumeric, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bitLength, len(seg.Data))
			assert.Equal(t, tc.bytes, []byte(seg.Data))
		})
	}
}

func TestMakeAlphanumericRejectsLowercase(t *testing.T) {
	_, err := MakeAlphanumeric("abc")
	assert.Error(t, err)
	var uce *UnsupportedCharacterError
	assert.ErrorAs(t, err, &uce)
	assert.Equal(t, 'a', uce.Char)
}

func TestMakeSegmentAuto(t *testing.T) {
	seg, err := makeSegment(ModeAuto, []byte("12345"))
	assert.NoError(t, err)
	assert.Equal(t, Numeric, seg.Mode)

	seg, err = makeSegment(ModeAuto, []byte("HELLO WORLD"))
	assert.NoError(t, err)
	assert.Equal(t, Alphanumeric, seg.Mode)

	seg, err = makeSegment(ModeAuto, []byte("Hello, world!"))
	assert.NoError(t, err)
	assert.Equal(t, Byte, seg.Mode)
}

func TestSegmentTotalBitsOverflowsCountField(t *testing.T) {
	seg := QRSegment{Mode: Numeric, NumChars: 1 << 10, Data: make(bitBuffer, 0)}
	_, err := seg.totalBits(Version(1)) // Version 1's numeric count field is only 10 bits wide.
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
