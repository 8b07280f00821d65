package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/studentbudget/backend/internal/types"
	"github.com/studentbudget/backend/pkg/client"
)

func newSummaryCmd(opts *options) *cobra.Command {
	var user, month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the spending summary of a user for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("invalid user ID %q: %w", user, err)
			}

			m := types.MonthOf(time.Now())
			if month != "" {
				m, err = types.ParseMonth(month)
				if err != nil {
					return fmt.Errorf("invalid month %q: %w", month, err)
				}
			}

			c, err := opts.client()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			summary, err := c.Month(ctx, id, m)
			if err != nil {
				return errors.New(client.UserMessage(err, opts.language))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Month:      %s\n", summary.Month)
			printStatus(cmd, summary.Status, opts.language)
			fmt.Fprintln(out)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "CATEGORY\tAMOUNT\tSHARE\t")
			for _, share := range summary.Categories {
				fmt.Fprintf(w, "%s\t%d\t%d%%\t\n", share.Name, share.Amount, share.Percentage)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "ID of the user")
	cmd.Flags().StringVar(&month, "month", "", "Month as YYYY-MM, defaults to the current month")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
