package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrUsage marks invalid command lines.
var ErrUsage = errors.New("invalid usage")

func newRootCmd(env *Environment) *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "quotepdf",
		Short: "Generate quotation PDFs from JSON or YAML requests",
		Long: `quotepdf turns quotation requests into paginated PDFs.

Requests name a template bundle (default, VIG, AGEMA, ...). Bundles live
in the templates directory and are reloaded on every request, so edits
take effect without a restart. Unknown templates fall back to the default.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(env.Stdin)
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
	g.register(root.PersistentFlags())

	root.AddCommand(
		newRenderCmd(env, g),
		newServeCmd(env, g),
		newTemplatesCmd(env, g),
		newVersionCmd(env),
	)
	return root
}

// requireArgs is cobra.MinimumNArgs reporting ErrUsage.
func requireArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("%w: %s needs at least %d argument(s)", ErrUsage, cmd.Name(), n)
		}
		return nil
	}
}

// noArgs is cobra.NoArgs reporting ErrUsage.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s takes no arguments, got %q", ErrUsage, cmd.Name(), args)
	}
	return nil
}
