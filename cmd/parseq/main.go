// Command parseq parses a JSON document with the jsonvalue combinator
// grammar and re-encodes it to stdout. It exists as an end-to-end exercise
// of the engine; on a parse failure it reports the byte offset and exits
// non-zero.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/reoring/parseq/jsonvalue"
)

func main() {
	indent := flag.Bool("indent", false, "re-encode with indentation")
	flag.Usage = usage
	flag.Parse()

	var data []byte
	var err error
	switch flag.NArg() {
	case 0:
		data, err = io.ReadAll(os.Stdin)
	case 1:
		data, err = os.ReadFile(flag.Arg(0))
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "parseq:", err)
		os.Exit(1)
	}

	v, err := jsonvalue.Parse(string(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, "parseq:", err)
		os.Exit(1)
	}

	var out []byte
	if *indent {
		out, err = json.MarshalIndent(v.Interface(), "", "  ")
	} else {
		out, err = v.EncodeJSON()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "parseq:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:\n  parseq [-indent] [file]\n\nReads a JSON document from file (or stdin) and re-encodes it to stdout.")
}
