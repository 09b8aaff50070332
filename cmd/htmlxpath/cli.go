package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/arturoeanton/go-htmlxpath/htmlxpath"
)

// run parses file (or stdin when empty), builds xpr, and prints every
// match. When watch is set it keeps re-running on every write to file
// until the process is interrupted.
func run(file, xpr string, watch bool) error {
	xp, err := htmlxpath.BuildXPath(xpr)
	if err != nil {
		return err
	}

	if !watch {
		return queryOnce(file, xp)
	}
	return watchAndQuery(file, xp)
}

func queryOnce(file string, xp *htmlxpath.XPath) error {
	input, err := readInput(file)
	if err != nil {
		return err
	}

	doc, err := htmlxpath.BuildDocument(input)
	if err != nil {
		return err
	}

	filter := doc.Query(xp)
	for {
		node, ok := filter.Next()
		if !ok {
			return nil
		}
		fmt.Println(htmlxpath.Canonical(node))
	}
}

func readInput(file string) (string, error) {
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(file)
	return string(data), err
}

// watchAndQuery re-runs queryOnce every time file changes, using
// fsnotify to wait on the filesystem rather than polling.
func watchAndQuery(file string, xp *htmlxpath.XPath) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(file); err != nil {
		return err
	}

	if err := queryOnce(file, xp); err != nil {
		fmt.Fprintln(os.Stderr, "htmlxpath:", err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := queryOnce(file, xp); err != nil {
				fmt.Fprintln(os.Stderr, "htmlxpath:", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "htmlxpath: watch error:", err)
		}
	}
}
