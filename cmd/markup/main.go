package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(procsLogger(env.Stderr, wantsVerbose(os.Args[1:]))))

	os.Exit(runMain(os.Args, env))
}

// procsLogger reports GOMAXPROCS adjustments in verbose mode only.
func procsLogger(w io.Writer, verbose bool) func(string, ...interface{}) {
	if !verbose {
		return func(string, ...interface{}) {}
	}
	return func(format string, args ...interface{}) {
		fmt.Fprintf(w, format+"\n", args...)
	}
}

// wantsVerbose scans raw arguments for -v or --verbose before any command
// parses them.
func wantsVerbose(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// runMain dispatches the command and returns the process exit code.
//
//	markup                               run the self-test
//	markup TEMPLATE DOCUMENT OUTPUT      convert (shorthand)
//	markup <command> [flags] [args]
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	rest := args[1:]
	if len(rest) == 0 {
		return report(env, runSelfTest(ctx, nil, env))
	}

	cmd := rest[0]
	if cmd == "-h" || cmd == "--help" {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if !isCommand(cmd) {
		return report(env, runConvert(ctx, rest, env))
	}

	var err error
	switch cmd {
	case "convert":
		err = runConvert(ctx, rest[1:], env)
	case "selftest":
		err = runSelfTest(ctx, rest[1:], env)
	case "config":
		err = runConfig(rest[1:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "%s %s\n", appName, Version)
	case "help":
		err = runHelp(rest[1:], env)
	}
	return report(env, err)
}

// report prints err with its hint and maps it to an exit code.
func report(env *Environment, err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, env.Config))
	return exitCodeFor(err)
}

const appName = "markup"

// isCommand reports whether arg names a subcommand. Anything else is taken
// as the first argument of the convert shorthand.
func isCommand(arg string) bool {
	switch arg {
	case "convert", "selftest", "config", "version", "help":
		return true
	}
	return false
}
