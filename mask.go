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

// Mask identifies one of the eight fixed XOR patterns applied to data
// modules during symbol construction.
type Mask int8

// autoMask requests that the mask engine evaluate all eight candidates and
// pick the one with the lowest penalty score.
const autoMask Mask = -1

func (m Mask) valid() bool {
	return 0 <= m && m <= 7
}
