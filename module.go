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

// cellState distinguishes an unwritten module from one carrying function
// metadata (never masked) and one carrying masked message data, so that
// placement bugs (writing a function cell as if it were data, or writing a
// data cell twice) are caught rather than silently overwriting a pixel.
type cellState uint8

const (
	cellUnset cellState = iota
	cellFunction
	cellData
)

func (s cellState) String() string {
	switch s {
	case cellUnset:
		return "unset"
	case cellFunction:
		return "function"
	case cellData:
		return "data"
	default:
		return "unknown"
	}
}

// module is a single tri-state cell of a Matrix.
type module struct {
	state cellState
	dark  bool
}
