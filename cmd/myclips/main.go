package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/myclips/internal/ast"
	"github.com/funvibe/myclips/internal/builtins"
	"github.com/funvibe/myclips/internal/config"
	"github.com/funvibe/myclips/internal/evaluator"
	"github.com/funvibe/myclips/internal/functions"
	"github.com/funvibe/myclips/internal/scope"
)

const usage = `Usage: myclips [flags] FUNCTION [ARG...]
       myclips -list

Calls a system function with the given arguments and prints the result.
Arguments: ?name is a variable, numbers are Integer or Float, "text" is a
String, anything else is a Symbol.

Flags:
`

// bindings collects repeated -set ?name=VALUE flags.
type bindings []string

func (b *bindings) String() string     { return strings.Join(*b, ",") }
func (b *bindings) Set(v string) error { *b = append(*b, v); return nil }

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("myclips", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "path to "+config.ConfigFileName+" (default: search upwards from the working directory)")
	module := fs.String("module", "", "module name of the evaluation scope (overrides config)")
	list := fs.Bool("list", false, "list system functions and exit")
	var sets bindings
	fs.Var(&sets, "set", "bind a variable, e.g. -set ?x=5 (repeatable)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *module != "" {
		cfg.Module = *module
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	s := scope.New(cfg.Module, builtins.Broker{Disabled: cfg.Builtins.Disabled}, functions.WithLogger(logger))
	logger.Debug("Scope created", "module", s.ModuleName(), "id", s.ID.String())

	if *list {
		for _, name := range s.Functions().SystemFunctions() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	env := evaluator.NewEnvironment(s)
	for _, set := range sets {
		name, value, err := parseBinding(set)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		env.Set(name, value)
	}

	callArgs := make([]ast.Node, 0, fs.NArg()-1)
	for _, word := range fs.Args()[1:] {
		callArgs = append(callArgs, parseWord(word))
	}
	call := env.NewCall(fs.Arg(0), callArgs...)
	logger.Debug("Calling function", "call", call.String())

	result, err := env.Call(call)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, colorize(result, useColor(cfg.Color, stdout)))
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path, err = config.FindConfig(wd)
		if err != nil {
			return nil, err
		}
		if path == "" {
			return config.Default(), nil
		}
	}
	return config.LoadConfig(path)
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// useColor decides whether output written to w gets ANSI colors.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func colorize(v ast.Value, color bool) string {
	s := v.String()
	if !color {
		return s
	}
	switch v {
	case ast.TRUE:
		return "\033[32m" + s + "\033[39m"
	case ast.FALSE:
		return "\033[31m" + s + "\033[39m"
	}
	return s
}
