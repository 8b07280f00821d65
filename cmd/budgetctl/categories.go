package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/studentbudget/backend/internal/budget"
)

func newCategoriesCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories [NAME...]",
		Short: "List the category registry or resolve category names",
		Long: `Without arguments, all categories of the registry are listed.

Names given as arguments are resolved to the category they are shown as,
names that match no category resolve to the fallback category.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := budget.Default()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			if len(args) == 0 {
				fmt.Fprintln(w, "NAME\tICON\tCOLOR\tBACKGROUND")
				for _, e := range registry.Entries() {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Icon, e.Color, e.Background)
				}
				return w.Flush()
			}

			fmt.Fprintln(w, "INPUT\tCATEGORY\tICON")
			for _, name := range args {
				e := registry.Lookup(name)
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, e.Name, e.Icon)
			}

			return w.Flush()
		},
	}
}
