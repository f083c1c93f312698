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

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/grkuntzmd/qrsymgen"
)

var rootCmd = &cobra.Command{
	Use:   "qrdemo [payload]",
	Short: "Build a QR Code symbol and render it as SVG or PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

var (
	flagVersion int
	flagLevel   string
	flagMode    string
	flagMask    string
	flagFormat  string
	flagOut     string
	flagBorder  int
	flagScale   int
	flagOpen    bool
)

func init() {
	rootCmd.Flags().IntVar(&flagVersion, "version", 5, "QR Code version, 1-40")
	rootCmd.Flags().StringVar(&flagLevel, "level", "M", "error correction level: L, M, Q or H")
	rootCmd.Flags().StringVar(&flagMode, "mode", "byte", "segment mode: auto, numeric, alphanumeric or byte")
	rootCmd.Flags().StringVar(&flagMask, "mask", "auto", "mask pattern: auto or 0-7")
	rootCmd.Flags().StringVar(&flagFormat, "format", "svg", "output format: svg or png")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "output file path (default: a temp file named by format)")
	rootCmd.Flags().IntVar(&flagBorder, "border", 4, "quiet zone width, in modules")
	rootCmd.Flags().IntVar(&flagScale, "scale", 10, "pixels per module (png only)")
	rootCmd.Flags().BoolVar(&flagOpen, "open", false, "open the rendered file in the default browser")
}

func runBuild(cmd *cobra.Command, args []string) error {
	level, err := parseECL(flagLevel)
	if err != nil {
		return err
	}
	mode, err := parseMode(flagMode)
	if err != nil {
		return err
	}
	mask, err := parseMask(flagMask)
	if err != nil {
		return err
	}

	opts := []qrcodegen.BuildOption{qrcodegen.WithMode(mode)}
	if mask >= 0 {
		opts = append(opts, qrcodegen.WithMask(qrcodegen.Mask(mask)))
	}

	qr, err := qrcodegen.Build([]byte(args[0]), qrcodegen.Version(flagVersion), level, opts...)
	if err != nil {
		return fmt.Errorf("building QR code: %w", err)
	}

	path, err := renderTo(qr, flagFormat, flagOut, flagBorder, flagScale)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (version %v, level %v, mask %v)\n", path, qr.Version, qr.ECLevel, qr.Mask)

	if flagOpen {
		if err := browser.OpenFile(path); err != nil {
			return fmt.Errorf("opening %s in browser: %w", path, err)
		}
	}
	return nil
}

// renderTo writes qr to out (or a generated temp file if out is empty) in
// the requested format, returning the path written.
func renderTo(qr *qrcodegen.QRCode, format, out string, border, scale int) (string, error) {
	switch strings.ToLower(format) {
	case "svg":
		svg, err := qr.ToSVGString(border, true)
		if err != nil {
			return "", fmt.Errorf("rendering svg: %w", err)
		}
		if out == "" {
			f, err := os.CreateTemp("", "qrdemo-*.svg")
			if err != nil {
				return "", fmt.Errorf("creating temp file: %w", err)
			}
			defer f.Close()
			out = f.Name()
			if _, err := f.WriteString(svg); err != nil {
				return "", fmt.Errorf("writing %s: %w", out, err)
			}
			return out, nil
		}
		if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
			return "", fmt.Errorf("writing %s: %w", out, err)
		}
		return out, nil
	case "png":
		if out == "" {
			f, err := os.CreateTemp("", "qrdemo-*.png")
			if err != nil {
				return "", fmt.Errorf("creating temp file: %w", err)
			}
			defer f.Close()
			if err := qr.WritePNG(f, border, scale); err != nil {
				return "", fmt.Errorf("rendering png: %w", err)
			}
			return f.Name(), nil
		}
		f, err := os.Create(out)
		if err != nil {
			return "", fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		if err := qr.WritePNG(f, border, scale); err != nil {
			return "", fmt.Errorf("rendering png: %w", err)
		}
		return out, nil
	default:
		return "", fmt.Errorf("unknown format %q: want svg or png", format)
	}
}

func parseECL(s string) (qrcodegen.ECL, error) {
	switch strings.ToUpper(s) {
	case "L":
		return qrcodegen.Low, nil
	case "M":
		return qrcodegen.Medium, nil
	case "Q":
		return qrcodegen.Quartile, nil
	case "H":
		return qrcodegen.High, nil
	default:
		return 0, fmt.Errorf("unknown error correction level %q: want L, M, Q or H", s)
	}
}

func parseMode(s string) (qrcodegen.Mode, error) {
	switch strings.ToLower(s) {
	case "auto":
		return qrcodegen.ModeAuto, nil
	case "numeric":
		return qrcodegen.Numeric, nil
	case "alphanumeric":
		return qrcodegen.Alphanumeric, nil
	case "byte":
		return qrcodegen.Byte, nil
	default:
		return qrcodegen.Mode{}, fmt.Errorf("unknown mode %q: want auto, numeric, alphanumeric or byte", s)
	}
}

// parseMask returns -1 for "auto", or a validated mask value 0-7.
func parseMask(s string) (int, error) {
	if strings.EqualFold(s, "auto") {
		return -1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 7 {
		return 0, fmt.Errorf("unknown mask %q: want auto or 0-7", s)
	}
	return n, nil
}
