package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// run executes the command line and returns the process exit code.
func run(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	root := newRootCmd(env)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}
