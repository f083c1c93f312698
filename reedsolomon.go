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

// reedSolomonEncode returns the ecCount error correction codewords for data,
// computed as the remainder of dividing data (as a polynomial, highest
// degree first) by the degree-ecCount generator polynomial over GF(2^8).
func reedSolomonEncode(data []byte, ecCount int) []byte {
	gen := generatorPolynomial(ecCount)
	remainder := make([]byte, ecCount)

	for _, b := range data {
		factor := b ^ remainder[0]
		copy(remainder, remainder[1:])
		remainder[ecCount-1] = 0

		if factor == 0 {
			continue
		}
		for j, g := range gen[1:] {
			remainder[j] ^= field.multiply(g, factor)
		}
	}

	return remainder
}
