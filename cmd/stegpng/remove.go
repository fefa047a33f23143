// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/stegpng/stegpng/pkg/steg"
)

// removeAction for the "remove" CLI option.
func removeAction(args []string) {
	if len(args) != 2 && len(args) != 3 {
		printUsage()
	}

	var (
		pngFile   = args[0]
		chunkType = args[1]
		outFile   = pngFile
	)
	if len(args) == 3 {
		outFile = args[2]
	}

	img, c, err := steg.Remove(readInput(pngFile), chunkType)
	if err != nil {
		printFatal(err, "Removing chunk errored")
	}

	log.WithFields(log.Fields{
		"chunk":  c.Type().String(),
		"length": c.Length(),
	}).Info("Removed chunk")

	writeOutput(outFile, img)
}
