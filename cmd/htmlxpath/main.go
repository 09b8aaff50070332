/*
Htmlxpath parses an HTML file and runs an XPath-like selector over it,
printing one canonicalized line per match.

Usage:

	htmlxpath --file FILE --xpath EXPR [--watch]

The flags are:

	-f, --file FILE
		HTML input to parse. Defaults to reading from stdin.

	-x, --xpath EXPR
		Selector expression, e.g. "//div[@class='item']/p:nth=1".

	-w, --watch
		Re-run the query whenever --file changes on disk. Requires --file
		(stdin cannot be watched).
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

var (
	file  = pflag.StringP("file", "f", "", "HTML input file; reads stdin if empty")
	xpath = pflag.StringP("xpath", "x", "", "XPath-like selector expression")
	watch = pflag.BoolP("watch", "w", false, "re-run the query when --file changes")
)

func main() {
	pflag.Parse()
	if *xpath == "" {
		fmt.Fprintln(os.Stderr, "htmlxpath: --xpath is required")
		os.Exit(2)
	}
	if *watch && *file == "" {
		fmt.Fprintln(os.Stderr, "htmlxpath: --watch requires --file")
		os.Exit(2)
	}

	if err := run(*file, *xpath, *watch); err != nil {
		fmt.Fprintln(os.Stderr, "htmlxpath:", err)
		os.Exit(1)
	}
}
