package main

import (
	"fmt"
	"io/ioutil"
	"os"

	log "github.com/sirupsen/logrus"
)

// printUsage of stegpng and exit with an error code afterwards.
func printUsage() {
	_, _ = fmt.Fprintf(os.Stderr, "Usage of %s encode|decode|remove|show|watch|serve:\n\n", os.Args[0])

	_, _ = fmt.Fprintf(os.Stderr, "%s encode png-file chunk-type message [out-file]\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "  Hides the message in a new chunk of the given type, appended after all\n")
	_, _ = fmt.Fprintf(os.Stderr, "  existing chunks. Without out-file, png-file is overwritten in place.\n\n")

	_, _ = fmt.Fprintf(os.Stderr, "%s decode png-file chunk-type\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "  Prints the message hidden in the first chunk of the given type.\n\n")

	_, _ = fmt.Fprintf(os.Stderr, "%s remove png-file chunk-type [out-file]\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "  Strips the first chunk of the given type. Without out-file, png-file is\n")
	_, _ = fmt.Fprintf(os.Stderr, "  overwritten in place.\n\n")

	_, _ = fmt.Fprintf(os.Stderr, "%s show [-json] png-file\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "  Prints the chunk list, human-readable or as JSON.\n\n")

	_, _ = fmt.Fprintf(os.Stderr, "%s watch directory chunk-type\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "  Watches the directory and logs the hidden message of every PNG file\n")
	_, _ = fmt.Fprintf(os.Stderr, "  created in it.\n\n")

	_, _ = fmt.Fprintf(os.Stderr, "%s serve configuration.toml\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "  Serves the encode/decode/remove/inspect operations over HTTP.\n\n")

	_, _ = fmt.Fprintf(os.Stderr, "A png-file of \"-\" reads from stdin, an out-file of \"-\" writes to stdout.\n")

	os.Exit(1)
}

// printFatal logs the error and exits afterwards.
func printFatal(err error, msg string) {
	log.WithError(err).Fatal(msg)
}

// readInput reads a complete file, or stdin for "-".
func readInput(path string) []byte {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = ioutil.ReadAll(os.Stdin)
	} else {
		data, err = ioutil.ReadFile(path)
	}
	if err != nil {
		printFatal(err, "Reading input errored")
	}

	return data
}

// writeOutput writes a complete file, or stdout for "-".
func writeOutput(path string, data []byte) {
	var err error

	if path == "-" {
		_, err = os.Stdout.Write(data)
	} else {
		err = ioutil.WriteFile(path, data, 0644)
	}
	if err != nil {
		printFatal(err, "Writing output errored")
	}
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
	}

	switch os.Args[1] {
	case "encode":
		encodeAction(os.Args[2:])

	case "decode":
		decodeAction(os.Args[2:])

	case "remove":
		removeAction(os.Args[2:])

	case "show":
		showAction(os.Args[2:])

	case "watch":
		watchAction(os.Args[2:])

	case "serve":
		serveAction(os.Args[2:])

	default:
		printUsage()
	}
}
