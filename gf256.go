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
 *
 * The field tables are modeled after the exp/log table construction used by
 * github.com/ashokshau/qrcode's reedsolomon.go and the gf256.Field type
 * vendored from github.com/vitrun/qart in several QR code implementations.
 */

package qrcodegen

// primitivePoly is the primitive polynomial QR Code's GF(2^8) arithmetic is
// defined over: x^8 + x^4 + x^3 + x^2 + 1.
const primitivePoly = 0x11D

// gf256 holds the exponent/log tables for GF(2^8) under primitivePoly, with
// generator element 2. Both tables are computed once and are immutable and
// safe to share across goroutines thereafter.
type gf256 struct {
	exp [256]byte // exp[i] = 2^i
	log [256]byte // log[1..255]; log[0] is undefined and never read
}

// field is the single GF(2^8) instance QR Code error correction uses.
var field = newGF256(primitivePoly)

func newGF256(poly int) *gf256 {
	var f gf256
	x := 1
	for i := 0; i < 256; i++ {
		f.exp[i] = byte(x)
		// The first assignment of log[1] (at i == 0) stands; the table
		// wraps back around to x == 1 at i == 255 and that repeat write
		// must not clobber it.
		if x != 1 || i == 0 {
			f.log[x] = byte(i)
		}
		x <<= 1
		if x >= 256 {
			x ^= poly
		}
	}
	return &f
}

// multiply returns x*y in the field, or 0 if either operand is 0.
func (f *gf256) multiply(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[(int(f.log[x])+int(f.log[y]))%255]
}
