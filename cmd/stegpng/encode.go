// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"github.com/stegpng/stegpng/pkg/steg"
)

// encodeAction for the "encode" CLI option.
func encodeAction(args []string) {
	if len(args) != 3 && len(args) != 4 {
		printUsage()
	}

	var (
		pngFile   = args[0]
		chunkType = args[1]
		message   = args[2]
		outFile   = pngFile
	)
	if len(args) == 4 {
		outFile = args[3]
	}

	img, err := steg.Encode(readInput(pngFile), chunkType, message)
	if err != nil {
		printFatal(err, "Encoding message errored")
	}

	writeOutput(outFile, img)
}
