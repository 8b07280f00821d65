package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/studentbudget/backend/internal/budget"
	"github.com/studentbudget/backend/internal/httputil"
)

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status SPENT BUDGET",
		Short: "Classify spending against a budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spent, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount spent %q: %w", args[0], err)
			}

			limit, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid budget %q: %w", args[1], err)
			}

			printStatus(cmd, budget.Classify(spent, limit), opts.language)
			return nil
		},
	}
}

func printStatus(cmd *cobra.Command, s budget.Status, language string) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Level:      %s (%s)\n", s.Level, s.Tier)
	fmt.Fprintf(out, "Spent:      %d / %d (%.1f%%)\n", s.Spent, s.Budget, s.Percentage)
	fmt.Fprintf(out, "Remaining:  %d\n", s.Remaining)
	fmt.Fprintf(out, "Message:    %s\n", httputil.Translate(s.Message, httputil.Language(language)))
}
