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

// generatorCache memoizes Reed-Solomon generator polynomials keyed by the
// number of EC words they produce. Entries are never evicted; the range
// actually exercised by the standard is small (7..30, max 68).
var generatorCache = map[int][]byte{}

// generatorPolynomial returns the coefficients of the degree-n generator
// polynomial g(x), highest-degree coefficient first, c[0] always 1.
func generatorPolynomial(n int) []byte {
	if g, ok := generatorCache[n]; ok {
		return g
	}

	g := []byte{1, 1} // g1(x) = x + α^0
	for deg := 2; deg <= n; deg++ {
		g = polyMultiply(g, []byte{1, field.exp[deg-1]})
	}

	generatorCache[n] = g
	return g
}

// polyMultiply multiplies two polynomials over GF(2^8), each represented
// highest-degree coefficient first.
func polyMultiply(a, b []byte) []byte {
	result := make([]byte, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			if bv == 0 {
				continue
			}
			result[i+j] ^= field.multiply(av, bv)
		}
	}
	return result
}
