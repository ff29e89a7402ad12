package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for command dispatch.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid usage")
)

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain runs the command line under a signal-aware context and returns the
// process exit code.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	return run(ctx, args, env)
}

// run dispatches to a command. Running without a command, or with flags
// only, is the update command.
func run(ctx context.Context, args []string, env *Environment) int {
	cmd, rest := splitCommand(args[1:])

	var err error
	switch cmd {
	case "update":
		err = runUpdate(ctx, rest, env)
	case "check":
		err = runCheck(ctx, rest, env)
	case "config":
		err = runConfig(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "showcase %s\n", Version)
	case "help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "error: %v: %s\n\n", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// splitCommand separates the command name from its arguments.
func splitCommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "update", nil
	}
	switch args[0] {
	case "-h", "--help":
		return "help", args[1:]
	case "--version":
		return "version", args[1:]
	}
	if strings.HasPrefix(args[0], "-") {
		return "update", args
	}
	return args[0], args[1:]
}
