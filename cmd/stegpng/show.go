// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"encoding/json"
	"fmt"

	"github.com/stegpng/stegpng/pkg/steg"
)

// showAction for the "show" CLI option.
func showAction(args []string) {
	asJson := len(args) >= 1 && args[0] == "-json"
	if asJson {
		args = args[1:]
	}
	if len(args) != 1 {
		printUsage()
	}

	p, err := steg.Inspect(readInput(args[0]))
	if err != nil {
		printFatal(err, "Parsing PNG errored")
	}

	if asJson {
		pMsg, err := json.Marshal(p)
		if err != nil {
			printFatal(err, "Marshaling JSON errored")
		}
		fmt.Println(string(pMsg))
	} else {
		fmt.Print(p)
	}
}
