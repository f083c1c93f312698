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
	"image"
	"image/color"
	"image/png"
	"io"
)

// WritePNG rasterizes the symbol at scale pixels per module, surrounded by
// a quiet zone border modules wide, and writes it to w as a PNG.
func (q *QRCode) WritePNG(w io.Writer, border, scale int) error {
	if border < 0 {
		return fmt.Errorf("qrcodegen: border must be non-negative, got %d", border)
	}
	if scale < 1 {
		return fmt.Errorf("qrcodegen: scale must be at least 1, got %d", scale)
	}

	size := q.Size()
	dim := (size + 2*border) * scale
	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{color.White, color.Black})

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !q.At(r, c) {
				continue
			}
			startX := (c + border) * scale
			startY := (r + border) * scale
			for y := 0; y < scale; y++ {
				for x := 0; x < scale; x++ {
					img.SetColorIndex(startX+x, startY+y, 1)
				}
			}
		}
	}

	return png.Encode(w, img)
}
