package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/shartrec/my_calculator/lib"
)

func main() {
	mode := flag.String("mode", "degrees", "angle mode: degrees, radians or grads")
	file := flag.String("f", "", "evaluate a script file, one expression per line")
	flag.Parse()

	angleMode, err := lib.ParseAngleMode(*mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ev := lib.Evaluator{Mode: angleMode}

	if *file != "" {
		os.Exit(runScript(ev, *file))
	}

	if flag.NArg() > 0 {
		expression := strings.Join(flag.Args(), " ")
		value, err := ev.Evaluate(expression)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(value)
		return
	}

	repl(ev)
}

func runScript(ev lib.Evaluator, path string) int {
	script, err := ev.ReadScriptFromFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	for _, r := range script.Results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s:%d: %s: %s\n", script.Path, r.Line, r.Expression, r.Err)
		} else {
			fmt.Printf("%s = %v\n", r.Expression, r.Value)
		}
	}

	if script.Failed() {
		return 1
	}
	return 0
}

func repl(ev lib.Evaluator) {
	history := lib.NewHistory()
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		case "history":
			for _, entry := range history.Entries() {
				fmt.Printf("%s = %v\n", entry.Expression, entry.Value)
			}
			continue
		case "functions":
			for _, f := range lib.Functions() {
				fmt.Println(f.Name())
			}
			continue
		case "constants":
			for _, c := range lib.Constants() {
				fmt.Printf("%s = %v\n", c.Name, c.Value)
			}
			continue
		}

		value, err := ev.Evaluate(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		history.Add(line, value)
		fmt.Println(value)
	}
}
