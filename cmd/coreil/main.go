// cmd/coreil/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"coreil/internal/jsonval"
	"coreil/internal/rterrors"
	"coreil/internal/runtime"
	"coreil/internal/value"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		showUsage()
		os.Exit(1)
	}

	if args[0] == "--help" || args[0] == "-h" || args[0] == "help" {
		showUsage()
		return
	}
	if args[0] == "--version" || args[0] == "-v" {
		fmt.Println("coreil 1.0.0")
		return
	}
	if args[0] == "ops" {
		listOps()
		return
	}

	var (
		pretty   bool
		trace    bool
		filename string
	)
	for _, a := range args {
		switch a {
		case "-pretty", "--pretty":
			pretty = true
		case "-trace", "--trace":
			trace = true
		default:
			if filename == "" {
				filename = a
			}
		}
	}
	if filename == "" {
		fmt.Fprintln(os.Stderr, "Error: no program file given")
		showUsage()
		os.Exit(1)
	}

	if err := runProgram(filename, pretty, trace); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runProgram loads a JSON-encoded sequence of {"op":..., "args":[...]}
// calls and executes them against a fresh Registry, printing each call's
// result as it completes.
func runProgram(filename string, pretty, trace bool) error {
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("could not read program file: %w", err)
	}

	program, err := jsonval.Parse(string(source))
	if err != nil {
		return fmt.Errorf("could not parse program: %w", err)
	}
	steps, ok := program.(*value.Array)
	if !ok {
		return rterrors.New(rterrors.TypeMismatch, "run", "program must be a JSON array of {\"op\",\"args\"} calls")
	}

	reg := runtime.New(os.Stdout)
	reg.SetTrace(trace)

	start := time.Now()
	for i, step := range steps.Elements {
		op, callArgs, err := decodeStep(step)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		result, err := reg.Call(op, callArgs)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i, op, err)
		}
		fmt.Println(jsonval.Stringify(result, pretty))
	}

	if trace {
		elapsed := time.Since(start)
		fmt.Fprintf(os.Stderr, "[coreil] ran %s operation(s) in %s\n",
			humanize.Comma(int64(len(steps.Elements))), humanize.Time(time.Now().Add(-elapsed)))
	}
	return nil
}

// decodeStep pulls the operation name and argument list out of one
// program entry, which must be a JSON object shaped like
// {"op": "add", "args": [1, 2]}.
func decodeStep(step value.Value) (string, []value.Value, error) {
	m, ok := step.(*value.Map)
	if !ok {
		return "", nil, rterrors.New(rterrors.TypeMismatch, "run", "each program step must be a JSON object")
	}
	opVal, ok := m.Get("op")
	if !ok {
		return "", nil, rterrors.New(rterrors.MissingKey, "run", `step is missing an "op" field`)
	}
	op, ok := opVal.(string)
	if !ok {
		return "", nil, rterrors.New(rterrors.TypeMismatch, "run", `"op" field must be a string`)
	}

	argsVal, ok := m.Get("args")
	if !ok {
		return op, nil, nil
	}
	argsArr, ok := argsVal.(*value.Array)
	if !ok {
		return "", nil, rterrors.New(rterrors.TypeMismatch, "run", `"args" field must be an array`)
	}
	return op, argsArr.Elements, nil
}

func listOps() {
	reg := runtime.New(os.Stdout)
	names := reg.Names()
	for _, n := range names {
		fmt.Println(n)
	}
}

func showUsage() {
	fmt.Println("coreil - Core IL Runtime")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  coreil <program.json> [-pretty] [-trace]   Run a JSON-encoded call program")
	fmt.Println("  coreil ops                                 List every registered operation")
	fmt.Println("  coreil --version                           Show version")
	fmt.Println("  coreil --help                               Show this message")
	fmt.Println()
	fmt.Println("Program format:")
	fmt.Println(`  [{"op": "add", "args": [1, 2]}, {"op": "print", "args": ["ok"]}]`)
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -pretty   pretty-print each step's result as indented JSON")
	fmt.Println("  -trace    log each operation call and its elapsed time to stderr")
}
