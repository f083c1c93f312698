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
	"errors"
	"fmt"
)

// ErrInvalidInput and errInternal are the broad categories every specific
// error below wraps, so callers can test with errors.Is(err,
// qrcodegen.ErrInvalidInput) without knowing the concrete type, or use
// errors.As for the details.
var (
	ErrInvalidInput = errors.New("qrcodegen: invalid input")
	errInternal     = errors.New("qrcodegen: internal invariant violated")
)

// InvalidVersionError reports a version number outside [1, 40].
type InvalidVersionError struct {
	Version int
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("qrcodegen: invalid version %d: must be in [1, 40]", e.Version)
}

func (e *InvalidVersionError) Unwrap() error { return ErrInvalidInput }

// InvalidECLevelError reports an error-correction level outside {L, M, Q, H}.
type InvalidECLevelError struct {
	Level ECL
}

func (e *InvalidECLevelError) Error() string {
	return fmt.Sprintf("qrcodegen: invalid error correction level %v", e.Level)
}

func (e *InvalidECLevelError) Unwrap() error { return ErrInvalidInput }

// PayloadTooLargeError reports that the encoded payload (plus its mode and
// character-count header) does not fit the data capacity of the requested
// version and error-correction level.
type PayloadTooLargeError struct {
	Version      Version
	ECLevel      ECL
	CapacityBits int
	NeededBits   int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf(
		"qrcodegen: payload needs %d bits but version %v level %v only has %d bits of data capacity",
		e.NeededBits, e.Version, e.ECLevel, e.CapacityBits,
	)
}

func (e *PayloadTooLargeError) Unwrap() error { return ErrInvalidInput }

// UnsupportedCharacterError reports a character outside the alphabet of the
// chosen segment mode (e.g. a lowercase letter in alphanumeric mode).
type UnsupportedCharacterError struct {
	Mode Mode
	Char rune
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("qrcodegen: character %q is not supported in %s mode", e.Char, e.Mode)
}

func (e *UnsupportedCharacterError) Unwrap() error { return ErrInvalidInput }

// InternalError reports an invariant breach during symbol construction — a
// defect in this library, never a caller mistake. These are treated as
// fatal rather than repaired in place, since a silently-patched symbol
// would be a QR Code that doesn't actually decode.
type InternalError struct {
	// Kind, when set, names the specific invariant that broke
	// ("SizeMismatch", "ReservedCellWrite"). Empty for a recovered panic
	// whose origin wasn't one of those two named cases.
	Kind   string
	Reason string
}

func (e *InternalError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("qrcodegen: internal error (%s): %s", e.Kind, e.Reason)
	}
	return "qrcodegen: internal error: " + e.Reason
}

func (e *InternalError) Unwrap() error { return errInternal }
