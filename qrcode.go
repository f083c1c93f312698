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
	"strings"
)

// QRCode is a built QR Code symbol: a module matrix plus the version, error
// correction level and mask that produced it.
type QRCode struct {
	Version Version
	ECLevel ECL
	Mask    Mask
	matrix  *Matrix
}

// Build encodes payload at the given version and error correction level
// into a finished QR Code symbol. By default the payload is encoded as a
// single Byte-mode segment and the mask is chosen automatically by penalty
// score; both can be overridden with WithMode and WithMask.
//
// Build validates its own inputs before doing any work; any panic that
// still escapes construction (an invariant this library is supposed to
// guarantee) is recovered and reported as an *InternalError rather than
// propagated, so callers never see a raw panic from this package.
func Build(payload []byte, version Version, ecl ECL, opts ...BuildOption) (qr *QRCode, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*InternalError); ok {
				qr, err = nil, ie
				return
			}
			qr, err = nil, &InternalError{Reason: fmt.Sprint(r)}
		}
	}()

	if !version.valid() {
		return nil, &InvalidVersionError{Version: int(version)}
	}
	if !ecl.valid() {
		return nil, &InvalidECLevelError{Level: ecl}
	}

	options := defaultBuildOptions()
	for _, o := range opts {
		o(&options)
	}
	if options.mask != autoMask && !options.mask.valid() {
		return nil, fmt.Errorf("%w: mask %d out of range", ErrInvalidInput, options.mask)
	}

	seg, err := makeSegment(options.mode, payload)
	if err != nil {
		return nil, err
	}

	neededBits, err := seg.totalBits(version)
	if err != nil {
		return nil, err
	}

	layout := blockLayoutFor(version, ecl)
	capacityBits := layout.totalDataCodewords() * 8
	if neededBits > capacityBits {
		return nil, &PayloadTooLargeError{
			Version:      version,
			ECLevel:      ecl,
			CapacityBits: capacityBits,
			NeededBits:   neededBits,
		}
	}

	bb := make(bitBuffer, 0, capacityBits)
	bb.appendBits(int(seg.Mode.modeBits), 4)
	bb.appendBits(seg.NumChars, seg.Mode.numCharCountBits(version))
	bb.extend(seg.Data)
	bb.padTo(capacityBits)

	blocks := splitAndEncodeBlocks(bb.bytes(), layout)
	stream := buildCodewordStream(blocks, version)

	matrix := newMatrix(version.size())
	matrix.drawFunctionPatterns(version)
	if err := matrix.placeData(stream); err != nil {
		return nil, err
	}
	dataCells := matrix.DataMask()
	mask := matrix.selectAndApplyMask(ecl, options.mask, dataCells)

	return &QRCode{Version: version, ECLevel: ecl, Mask: mask, matrix: matrix}, nil
}

// Size returns the side length of the symbol in modules.
func (q *QRCode) Size() int {
	return q.matrix.Size()
}

// At reports whether the module at (row, col) is dark. Callers add their
// own quiet zone around this grid when rendering.
func (q *QRCode) At(row, col int) bool {
	return q.matrix.At(row, col)
}

func (q *QRCode) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "QRCode version=%v ecl=%v mask=%v\n", q.Version, q.ECLevel, q.Mask)
	size := q.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if q.At(r, c) {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
