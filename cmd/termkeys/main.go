package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/reusee/termtape/commands"
)

const usage = `usage:
  termkeys KEY...          send keys, e.g. termkeys ls Enter
  termkeys -input TEXT     send raw input
  termkeys -resize CxR     resize, e.g. termkeys -resize 120x40
  termkeys -snapshot       take a snapshot
`

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		os.Stderr.WriteString(usage)
		os.Exit(1)
	}

	var cmd commands.Command
	switch args[0] {

	case "-input":
		if len(args) != 2 {
			os.Stderr.WriteString(usage)
			os.Exit(1)
		}
		cmd = commands.Input(args[1])

	case "-resize":
		if len(args) != 2 {
			os.Stderr.WriteString(usage)
			os.Exit(1)
		}
		cols, rows, ok := parseSize(args[1])
		if !ok {
			fmt.Fprintf(os.Stderr, "bad size: %s\n", args[1])
			os.Exit(1)
		}
		cmd = commands.Resize(cols, rows)

	case "-snapshot":
		cmd = commands.TakeSnapshot()

	default:
		cmd = commands.SendKeys(args...)
	}

	if err := commands.Encode(os.Stdout, cmd); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(1)
	}
}

func parseSize(str string) (cols int, rows int, ok bool) {
	parts := strings.SplitN(str, "x", 2)
	if len(parts) != 2 {
		return
	}
	var err error
	cols, err = strconv.Atoi(parts[0])
	if err != nil || cols <= 0 {
		return
	}
	rows, err = strconv.Atoi(parts[1])
	if err != nil || rows <= 0 {
		return
	}
	ok = true
	return
}
