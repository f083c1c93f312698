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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAndEncodeBlocksCount(t *testing.T) {
	v, ecl := Version(5), Quartile
	layout := blockLayoutFor(v, ecl)
	padded := make([]byte, layout.totalDataCodewords())
	for i := range padded {
		padded[i] = byte(i)
	}

	blocks := splitAndEncodeBlocks(padded, layout)
	assert.Len(t, blocks, layout.numBlocks())

	for _, g := range layout.groups {
		found := 0
		for _, b := range blocks {
			if len(b.data) == g.dataWords {
				found++
			}
		}
		assert.GreaterOrEqual(t, found, g.count)
	}
}

func TestBuildCodewordStreamLengthMatchesRawModules(t *testing.T) {
	for _, v := range []Version{1, 5, 7, 20, 40} {
		for _, ecl := range []ECL{Low, Medium, Quartile, High} {
			layout := blockLayoutFor(v, ecl)
			padded := make([]byte, layout.totalDataCodewords())
			blocks := splitAndEncodeBlocks(padded, layout)
			stream := buildCodewordStream(blocks, v)
			assert.Equal(t, numRawDataModules[v], len(stream), "version %v ecl %v", v, ecl)
		}
	}
}

func TestBuildCodewordStreamInterleavesDataBeforeEC(t *testing.T) {
	layout := blockLayoutFor(5, Quartile) // two groups of unequal block length
	padded := make([]byte, layout.totalDataCodewords())
	for i := range padded {
		padded[i] = 0xFF
	}
	blocks := splitAndEncodeBlocks(padded, layout)

	totalData := 0
	for _, b := range blocks {
		totalData += len(b.data)
	}

	stream := buildCodewordStream(blocks, 5)
	firstECBit := totalData * 8
	for i := 0; i < firstECBit; i++ {
		assert.Equal(t, byte(1), stream.get(i), "expected data region to be all-ones at bit %d", i)
	}
}
