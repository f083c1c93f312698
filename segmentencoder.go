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

// buildOptions holds the tunables of a Build call.
type buildOptions struct {
	mode Mode
	mask Mask
}

func defaultBuildOptions() buildOptions {
	return buildOptions{mode: Byte, mask: autoMask}
}

// BuildOption configures a single Build call.
type BuildOption func(*buildOptions)

// WithMode selects the segment encoding Build uses for the payload.
// ModeAuto asks Build to pick the most compact of Numeric, Alphanumeric or
// Byte. The default is Byte.
func WithMode(mode Mode) BuildOption {
	return func(o *buildOptions) {
		o.mode = mode
	}
}

// WithMask fixes the mask pattern Build applies, bypassing penalty-based
// selection. The default evaluates all eight masks and picks the lowest
// scoring one.
func WithMask(mask Mask) BuildOption {
	return func(o *buildOptions) {
		o.mask = mask
	}
}
