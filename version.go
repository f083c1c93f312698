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

import "strconv"

// Version is a QR Code version number in the range [1, 40]. A symbol of
// version V has side length S = 17 + 4*V modules.
type Version int

// The smallest and largest version numbers a QR Code symbol may have.
const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

func (v Version) valid() bool {
	return MinVersion <= v && v <= MaxVersion
}

func (v Version) size() int {
	return int(v)*4 + 17
}

func (v Version) String() string {
	return strconv.Itoa(int(v))
}
