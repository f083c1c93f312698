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

// eccCodeWordsPerBlock[ecl][v] is the number of EC codewords in each block
// of version v at error correction level ecl. Index 0 is unused.
var eccCodeWordsPerBlock = [4][41]int{
	//     0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
}

// numErrorCorrectionBlocks[ecl][v] is the number of blocks version v splits
// into at error correction level ecl. Index 0 is unused.
var numErrorCorrectionBlocks = [4][41]int{
	//     0, 1, 2, 3, 4, 5, 6, 7, 8, 9,10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
}

// blockGroup is one row of a version/EC level's block configuration: count
// identical blocks, each holding dataWords data bytes and (totalWords -
// dataWords) EC bytes.
type blockGroup struct {
	count      int
	totalWords int
	dataWords  int
}

func (g blockGroup) ecWords() int {
	return g.totalWords - g.dataWords
}

// blockLayout is the full block configuration for one (version, EC level)
// pair: one or two groups, short blocks first.
type blockLayout struct {
	groups []blockGroup
}

func (l blockLayout) numBlocks() int {
	n := 0
	for _, g := range l.groups {
		n += g.count
	}
	return n
}

func (l blockLayout) totalDataCodewords() int {
	n := 0
	for _, g := range l.groups {
		n += g.count * g.dataWords
	}
	return n
}

func (l blockLayout) totalCodewords() int {
	n := 0
	for _, g := range l.groups {
		n += g.count * g.totalWords
	}
	return n
}

// blockLayoutFor derives the block configuration for version v at error
// correction level ecl from the standard's per-block EC length and block
// count tables, following the standard's rule that any remainder blocks
// (when the raw codeword count doesn't divide evenly) are one byte longer
// and sorted last.
func blockLayoutFor(v Version, ecl ECL) blockLayout {
	numBlocks := numErrorCorrectionBlocks[ecl][v]
	ecWords := eccCodeWordsPerBlock[ecl][v]
	rawCodewords := numRawDataModules[v] / 8

	shortTotal := rawCodewords / numBlocks
	numLong := rawCodewords % numBlocks
	numShort := numBlocks - numLong

	layout := blockLayout{}
	if numShort > 0 {
		layout.groups = append(layout.groups, blockGroup{
			count:      numShort,
			totalWords: shortTotal,
			dataWords:  shortTotal - ecWords,
		})
	}
	if numLong > 0 {
		layout.groups = append(layout.groups, blockGroup{
			count:      numLong,
			totalWords: shortTotal + 1,
			dataWords:  shortTotal + 1 - ecWords,
		})
	}

	return layout
}
