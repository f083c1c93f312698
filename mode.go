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

// Mode identifies a segment's encoding.
type Mode struct {
	name     string
	modeBits int8
	numBits  [3]int8 // character-count indicator width for version bands 1-9, 10-26, 27-40
}

// Mode values usable in a segment. ModeAuto is not a real segment mode; it
// asks Build to pick the most compact of Numeric, Alphanumeric or Byte for
// the given payload.
var (
	Numeric      = Mode{"numeric", 0x1, [3]int8{10, 12, 14}}
	Alphanumeric = Mode{"alphanumeric", 0x2, [3]int8{9, 11, 13}}
	Byte         = Mode{"byte", 0x4, [3]int8{8, 16, 16}}
	ModeAuto     = Mode{"auto", -1, [3]int8{}}
)

func (m Mode) String() string {
	return m.name
}

// numCharCountBits returns the width, in bits, of this mode's character
// count indicator for the given version.
func (m Mode) numCharCountBits(version Version) int8 {
	return m.numBits[(version+7)/17]
}
