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

// Matrix is the square grid of modules that makes up a QR Code symbol.
// Cells start unset, are claimed by function patterns and reservations,
// then the remainder are claimed by data placement; by the time Build
// returns every cell is either function or data, never unset.
type Matrix struct {
	size  int
	cells [][]module
}

func newMatrix(size int) *Matrix {
	cells := make([][]module, size)
	for i := range cells {
		cells[i] = make([]module, size)
	}
	return &Matrix{size: size, cells: cells}
}

// Size returns the side length of the matrix in modules.
func (m *Matrix) Size() int {
	return m.size
}

// At reports whether the module at (row, col) is dark.
func (m *Matrix) At(row, col int) bool {
	return m.cells[row][col].dark
}

// DataMask returns a grid the same size as the matrix, true where the cell
// is eligible for masking (carries message data rather than function
// metadata). It is only meaningful after function patterns and reserved
// regions have been placed.
func (m *Matrix) DataMask() [][]bool {
	mask := make([][]bool, m.size)
	for r := range mask {
		mask[r] = make([]bool, m.size)
		for c := range mask[r] {
			mask[r][c] = m.cells[r][c].state != cellFunction
		}
	}
	return mask
}

func (m *Matrix) setFunction(row, col int, dark bool) {
	m.cells[row][col] = module{state: cellFunction, dark: dark}
}

func (m *Matrix) setData(row, col int, dark bool) error {
	if m.cells[row][col].state != cellUnset {
		return &InternalError{Kind: "ReservedCellWrite", Reason: "data placement landed on an already-claimed cell"}
	}
	m.cells[row][col] = module{state: cellData, dark: dark}
	return nil
}

func (m *Matrix) toggleData(row, col int) {
	m.cells[row][col].dark = !m.cells[row][col].dark
}

func (m *Matrix) inBounds(row, col int) bool {
	return 0 <= row && row < m.size && 0 <= col && col < m.size
}

// drawFinder draws a 9x9 finder pattern, including its separator border,
// centred at (row, col).
func (m *Matrix) drawFinder(row, col int) {
	for dr := -4; dr <= 4; dr++ {
		for dc := -4; dc <= 4; dc++ {
			r, c := row+dr, col+dc
			if !m.inBounds(r, c) {
				continue
			}
			dist := maxInt(absInt(dr), absInt(dc))
			m.setFunction(r, c, dist != 2 && dist != 4)
		}
	}
}

// footprintClear reports whether every cell of the 5x5 footprint centred at
// (row, col) is still unset, so an alignment pattern can be placed there
// without clobbering a finder or another alignment pattern.
func (m *Matrix) footprintClear(row, col int) bool {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			r, c := row+dr, col+dc
			if !m.inBounds(r, c) || m.cells[r][c].state != cellUnset {
				return false
			}
		}
	}
	return true
}

// drawAlignment draws a 5x5 alignment pattern centred at (row, col).
func (m *Matrix) drawAlignment(row, col int) {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			dist := maxInt(absInt(dr), absInt(dc))
			m.setFunction(row+dr, col+dc, dist != 1)
		}
	}
}

func (m *Matrix) drawTiming() {
	for i := 0; i < m.size; i++ {
		if m.cells[6][i].state == cellUnset {
			m.setFunction(6, i, i%2 == 0)
		}
		if m.cells[i][6].state == cellUnset {
			m.setFunction(i, 6, i%2 == 0)
		}
	}
}

func (m *Matrix) drawDarkModule() {
	m.setFunction(m.size-8, 8, true)
}

// reserveFormatRegions claims, but does not yet write meaningfully, the 15
// cells in each of the two format-info copies around the top-left,
// top-right and bottom-left finders.
func (m *Matrix) reserveFormatRegions() {
	m.writeFormatBits(0)
}

// reserveVersionRegions claims the two 3x6 version-info rectangles for
// version >= 7; a no-op below that.
func (m *Matrix) reserveVersionRegions(v Version) {
	m.writeVersionBits(v)
}

// drawFunctionPatterns lays down every function pattern and reservation:
// finders (with fused separators), alignment, timing, the dark module, and
// placeholder format/version info. Alignment must be drawn before timing:
// for version >= 7 some alignment centres' 5x5 footprints straddle row/col
// 6, and footprintClear would see those cells already claimed if timing
// went first, silently dropping the alignment pattern. Timing is drawn
// afterward and already skips any cell alignment has claimed. What remains
// unset afterward is the data region §4.9 fills.
func (m *Matrix) drawFunctionPatterns(v Version) {
	m.drawFinder(3, 3)
	m.drawFinder(3, m.size-4)
	m.drawFinder(m.size-4, 3)

	positions := alignmentPatternPositions[v]
	for _, r := range positions {
		for _, c := range positions {
			if m.footprintClear(int(r), int(c)) {
				m.drawAlignment(int(r), int(c))
			}
		}
	}

	m.drawTiming()

	m.drawDarkModule()
	m.reserveFormatRegions()
	m.reserveVersionRegions(v)
}

// writeFormatBits draws both copies of the 15-bit format string.
func (m *Matrix) writeFormatBits(bits uint32) {
	for i := uint(0); i <= 5; i++ {
		m.setFunction(int(i), 8, getBit(bits, i))
	}
	m.setFunction(7, 8, getBit(bits, 6))
	m.setFunction(8, 8, getBit(bits, 7))
	m.setFunction(8, 7, getBit(bits, 8))
	for i := uint(9); i < 15; i++ {
		m.setFunction(8, int(14-i), getBit(bits, i))
	}

	for i := uint(0); i < 8; i++ {
		m.setFunction(8, m.size-1-int(i), getBit(bits, i))
	}
	for i := uint(8); i < 15; i++ {
		m.setFunction(m.size-15+int(i), 8, getBit(bits, i))
	}
}

// writeVersionBits draws both copies of the 18-bit version string; a no-op
// for version < 7, which carries no version info.
func (m *Matrix) writeVersionBits(v Version) {
	if v < 7 {
		return
	}

	bits := versionBits(v)
	for i := uint(0); i < 18; i++ {
		bit := getBit(bits, i)
		a := m.size - 11 + int(i%3)
		b := int(i / 3)
		m.setFunction(b, a, bit)
		m.setFunction(a, b, bit)
	}
}

// placeData walks the data region in the standard serpentine order —
// column pairs from the right, skipping column 6, alternating vertical
// direction each pair — writing one bit per unclaimed cell. Any cells left
// over once bits is exhausted are filled light, matching the standard's
// guarantee that remainder bits make this a rare, harmless occurrence
// rather than an error.
func (m *Matrix) placeData(bits bitBuffer) error {
	i := 0
	for right := m.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		upward := (right+1)&2 == 0
		for vert := 0; vert < m.size; vert++ {
			row := vert
			if upward {
				row = m.size - 1 - vert
			}
			for j := 0; j < 2; j++ {
				col := right - j
				if m.cells[row][col].state != cellUnset {
					continue
				}
				dark := false
				if i < len(bits) {
					dark = bits.get(i) == 1
				}
				if err := m.setData(row, col, dark); err != nil {
					return err
				}
				i++
			}
		}
	}
	return nil
}
