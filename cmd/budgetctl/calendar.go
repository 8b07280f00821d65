package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/studentbudget/backend/internal/budget"
	"github.com/studentbudget/backend/internal/types"
)

func newCalendarCmd(opts *options) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Print the calendar of a month",
		Long: `Print the calendar grid of a month, the current month if none is given.

With --user, the daily spending of the user is fetched from the API and
printed below each day.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month := types.MonthOf(time.Now())
			if len(args) == 1 {
				var err error
				month, err = types.ParseMonth(args[0])
				if err != nil {
					return fmt.Errorf("invalid month %q: %w", args[0], err)
				}
			}

			var weeks [][]budget.Day
			if user == "" {
				cells := budget.Grid(month, time.Now())
				weeks = budget.Weeks(budget.Annotate(cells, budget.Summary{}))
			} else {
				id, err := uuid.Parse(user)
				if err != nil {
					return fmt.Errorf("invalid user ID %q: %w", user, err)
				}

				c, err := opts.client()
				if err != nil {
					return err
				}

				ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
				defer cancel()

				calendar, err := c.Calendar(ctx, id, month)
				if err != nil {
					return err
				}
				weeks = calendar.Weeks
			}

			printCalendar(cmd, month, weeks, user != "")
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "ID of the user to show spending for")

	return cmd
}

func printCalendar(cmd *cobra.Command, month types.Month, weeks [][]budget.Day, totals bool) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s\n", month)
	fmt.Fprintln(out, "    Su     Mo     Tu     We     Th     Fr     Sa")

	for _, week := range weeks {
		days := make([]string, 0, len(week))
		amounts := make([]string, 0, len(week))

		for _, d := range week {
			switch {
			case !d.InMonth:
				days = append(days, fmt.Sprintf("%6s", ""))
			case d.Today:
				days = append(days, fmt.Sprintf("%5d*", d.Date.Day()))
			default:
				days = append(days, fmt.Sprintf("%6d", d.Date.Day()))
			}

			if d.InMonth && d.Total > 0 {
				amounts = append(amounts, fmt.Sprintf("%6d", d.Total))
			} else {
				amounts = append(amounts, fmt.Sprintf("%6s", ""))
			}
		}

		fmt.Fprintln(out, strings.Join(days, " "))
		if totals {
			fmt.Fprintln(out, strings.Join(amounts, " "))
		}
	}
}
