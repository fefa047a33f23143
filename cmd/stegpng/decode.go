// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"

	"github.com/stegpng/stegpng/pkg/steg"
)

// decodeAction for the "decode" CLI option.
func decodeAction(args []string) {
	if len(args) != 2 {
		printUsage()
	}

	msg, err := steg.Decode(readInput(args[0]), args[1])
	if err != nil {
		printFatal(err, "Decoding message errored")
	}

	fmt.Println(msg)
}
