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
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// QRSegment is a single run of a symbol's payload encoded under one mode.
// A symbol may carry more than one segment, each switching mode mid-stream,
// though Build only ever emits a single segment for its payload.
type QRSegment struct {
	Mode     Mode      // The encoding used for this segment.
	NumChars int       // The length of this segment's unencoded data.
	Data     bitBuffer // The encoded payload bits, not including the mode or count header.
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
)

// totalBits returns the number of bits this segment occupies once its mode
// indicator and character-count indicator, sized for version, are included.
// It returns an error if NumChars overflows the count field's width.
func (s QRSegment) totalBits(version Version) (int, error) {
	ccBits := s.Mode.numCharCountBits(version)
	if s.NumChars >= 1<<uint(ccBits) {
		return 0, fmt.Errorf("%w: %d characters does not fit the %d-bit count field for version %v", ErrInvalidInput, s.NumChars, ccBits, version)
	}
	return 4 + int(ccBits) + len(s.Data), nil
}

// MakeAlphanumeric creates an alphanumeric segment from text, which must
// contain only digits, uppercase letters, and the symbols space $ % * + - . /
// :. Build with WithMode(ModeAuto) picks this encoding automatically for text
// that fits the alphabet.
func MakeAlphanumeric(text string) (*QRSegment, error) {
	if !alphanumericRegexp.MatchString(text) {
		return nil, badAlphanumericChar(text)
	}

	bb := make(bitBuffer, 0, len(text)*5+(len(text)+1)/2)
	var i int
	for i = 0; i <= len(text)-2; i += 2 { // Process groups of 2 characters.
		temp := strings.IndexByte(alphanumericCharset, text[i]) * 45
		temp += strings.IndexByte(alphanumericCharset, text[i+1])
		bb.appendBits(temp, 11)
	}
	if i < len(text) { // 1 character remaining.
		bb.appendBits(strings.IndexByte(alphanumericCharset, text[i]), 6)
	}

	return &QRSegment{Mode: Alphanumeric, NumChars: len(text), Data: bb}, nil
}

func badAlphanumericChar(text string) error {
	for _, r := range text {
		if !strings.ContainsRune(alphanumericCharset, r) {
			return &UnsupportedCharacterError{Mode: Alphanumeric, Char: r}
		}
	}
	return &UnsupportedCharacterError{Mode: Alphanumeric}
}

// MakeBytes encodes data into a QR segment of type Byte, 8 bits per byte.
// data must be valid UTF-8; any other byte sequence is rejected with an
// *UnsupportedCharacterError.
func MakeBytes(data []byte) (*QRSegment, error) {
	if !utf8.Valid(data) {
		return nil, &UnsupportedCharacterError{Mode: Byte, Char: utf8.RuneError}
	}

	return &QRSegment{Mode: Byte, NumChars: len(data), Data: bitsFromBytes(data)}, nil
}

// MakeNumeric creates a numeric segment from digits, which must contain only
// the characters 0-9.
func MakeNumeric(digits string) (*QRSegment, error) {
	if !numericRegexp.MatchString(digits) {
		for _, r := range digits {
			if r < '0' || r > '9' {
				return nil, &UnsupportedCharacterError{Mode: Numeric, Char: r}
			}
		}
	}

	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := minInt(len(digits)-i, 3)
		d, err := strconv.Atoi(digits[i : i+n])
		if err != nil {
			return nil, &UnsupportedCharacterError{Mode: Numeric}
		}
		bb.appendBits(d, int8(n*3+1))
		i += n
	}

	return &QRSegment{Mode: Numeric, NumChars: len(digits), Data: bb}, nil
}

// makeSegment builds a segment under the requested mode, or, for ModeAuto,
// picks the most compact of Numeric, Alphanumeric or Byte that the payload
// is valid under.
func makeSegment(mode Mode, payload []byte) (*QRSegment, error) {
	text := string(payload)
	switch mode {
	case Numeric:
		return MakeNumeric(text)
	case Alphanumeric:
		return MakeAlphanumeric(text)
	case Byte:
		return MakeBytes(payload)
	case ModeAuto:
		switch {
		case numericRegexp.MatchString(text):
			return MakeNumeric(text)
		case alphanumericRegexp.MatchString(text):
			return MakeAlphanumeric(text)
		default:
			return MakeBytes(payload)
		}
	default:
		return nil, &UnsupportedCharacterError{Mode: mode}
	}
}
