package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alnah/go-quotepdf"
)

func newTemplatesCmd(env *Environment, g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List template bundles and their default rates",
		Args:  noArgs,
		RunE: func(*cobra.Command, []string) error {
			a, err := setup(env, g)
			if err != nil {
				return err
			}
			return printTemplates(env.Stdout, a.reg.List())
		},
	}
}

// printTemplates writes one row per bundle. Broken bundles show their error.
func printTemplates(w io.Writer, list []quotepdf.TemplateInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLAYOUT\tDISCOUNT\tTAX\tSTATUS")
	for _, t := range list {
		status := "ok"
		switch {
		case t.Err != nil:
			status = t.Err.Error()
		case t.Default:
			status = "default"
		}
		fmt.Fprintf(tw, "%s\t%s\t%g%%\t%g%%\t%s\n", t.ID, t.Layout, t.Defaults.Discount, t.Defaults.Tax, status)
	}
	return tw.Flush()
}
