// Package main provides the guidoc command line compiler.
//
// Usage:
//
//	guidoc [options] [file...]    Compile layout specs to method source
//	guidoc -i spec.guidoc         Compile a single file
//	guidoc -i -                   Compile a spec read from stdin
//
// Each compiled layout is printed to stdout in argument order.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/guidoc/guidoc/pkg/guidoc"
	"github.com/guidoc/guidoc/pkg/rsttable"
)

const version = "0.9.2"

const usage = `guidoc - GUI layout spec compiler

Usage:
  guidoc [options] [file...]

Options:
  -i file     Input spec file, or - for stdin (may combine with positional files)
  -L prefix   Library prefix for widget classes (default "tk")
  -n name     Name of the generated method (default "` + guidoc.DefaultMethodName + `")
  -d          Fail on grid sections that contain no parsable table
  -v          Print version information and exit

Examples:
  guidoc app.guidoc               Compile one layout spec
  guidoc a.guidoc b.guidoc        Compile several specs
  guidoc -i - < app.guidoc        Compile from stdin
  guidoc -L ttk -n _layout x.gd   Custom prefix and method name
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("guidoc", flag.ExitOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	input := fs.String("i", "", "input spec file, or - for stdin")
	libPrefix := fs.String("L", "tk", "library prefix for widget classes")
	methodName := fs.String("n", guidoc.DefaultMethodName, "name of the generated method")
	strict := fs.Bool("d", false, "fail on grid sections that contain no parsable table")
	showVersion := fs.Bool("v", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Printf("guidoc version %s\n", version)
		return nil
	}

	var inputs []string
	if *input != "" {
		inputs = append(inputs, *input)
	}
	inputs = append(inputs, fs.Args()...)
	if len(inputs) == 0 {
		fs.Usage()
		return fmt.Errorf("no input files")
	}

	outputs := make([]string, len(inputs))
	var g errgroup.Group
	for i, name := range inputs {
		i, name := i, name
		g.Go(func() error {
			out, err := compileFile(name, *libPrefix, *methodName, *strict)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, out := range outputs {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(out)
	}
	return nil
}

// compileFile reads one spec, from a file or stdin, and compiles it.
func compileFile(name, libPrefix, methodName string, strict bool) (string, error) {
	var (
		data []byte
		err  error
		ctx  = name
	)
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
		ctx = "<stdin>"
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", err
	}

	return guidoc.Compile(string(data), guidoc.Options{
		MethodName:    methodName,
		LibPrefix:     libPrefix,
		Context:       ctx,
		Tables:        rsttable.New(),
		RequireTables: strict,
		Resolver:      guidoc.TkSymbols(libPrefix),
	})
}
