// Command addrcheck validates address text and prints its canonical form.
//
// Usage:
//
//	addrcheck [-optional] [-display] [file...]
//
// Each file holds one address; with no files the address is read from
// standard input. The exit status is 1 when any address is rejected.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andreiashu/postaddr"
	"github.com/fatih/color"
)

var (
	okLabel   = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	dim       = color.New(color.Faint).SprintFunc()
)

func main() {
	optional := flag.Bool("optional", false, "accept blank input")
	display := flag.Bool("display", false, "also print the display form")
	flag.Parse()

	os.Exit(run(flag.Args(), *optional, *display, os.Stdin, color.Output, color.Error))
}

// run checks every input and returns the exit status.
func run(files []string, optional, display bool, stdin io.Reader, stdout, stderr io.Writer) int {
	checker := postaddr.NewChecker(postaddr.WithCacheSize(0))
	if len(files) == 0 {
		files = []string{"-"}
	}

	status := 0
	for _, name := range files {
		text, err := readInput(name, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "%s %s: %v\n", failLabel("ERROR"), name, err)
			status = 1
			continue
		}

		var res postaddr.Result
		if optional {
			res, err = checker.CheckOptional(text)
		} else {
			res, err = checker.Check(text)
		}
		if err != nil {
			fmt.Fprintf(stderr, "%s %s [%s]: %v\n", failLabel("INVALID"), name, postaddr.ErrorKind(err), err)
			status = 1
			continue
		}

		fmt.Fprintf(stdout, "%s %s\n", okLabel("OK"), name)
		fmt.Fprintln(stdout, res.Canonical)
		if display && res.Display != "" {
			fmt.Fprintln(stdout, dim("---"))
			fmt.Fprintln(stdout, res.Display)
		}
	}
	return status
}

// readInput reads one address. The newline terminating the file is dropped;
// any blank line before it is a trailing line of the address.
func readInput(name string, stdin io.Reader) (string, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
