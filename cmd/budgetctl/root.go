package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/studentbudget/backend/internal/budget"
	"github.com/studentbudget/backend/pkg/client"
)

// options are the persistent flags of all commands.
type options struct {
	apiURL   string
	language string
	registry string
	timeout  time.Duration
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "budgetctl",
		Short: "Student Budget command line tool",
		Long: `budgetctl inspects budgets and calendars of the Student Budget backend.

Examples:
  budgetctl status 25000 30000
  budgetctl calendar 2024-02
  budgetctl summary --user 9c3ed4a5-0e3d-4b8a-9dc4-6cf42b0ec2a2 --month 2024-08`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.WarnLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level).With().Timestamp().Logger()

			if opts.registry == "" {
				return nil
			}

			registry, err := budget.LoadRegistry(opts.registry)
			if err != nil {
				return err
			}
			budget.UseRegistry(registry)
			log.Debug().Str("file", opts.registry).Msg("Category registry loaded")

			return nil
		},
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = "http://localhost:8080"
	}

	cmd.PersistentFlags().StringVar(&opts.apiURL, "api", apiURL, "Base URL of the API, defaults to $API_URL")
	cmd.PersistentFlags().StringVar(&opts.language, "lang", "ja", "Language for messages (ja|en)")
	cmd.PersistentFlags().StringVar(&opts.registry, "registry", "", "Category registry file replacing the built-in categories")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Timeout for API requests")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newStatusCmd(opts),
		newCalendarCmd(opts),
		newSummaryCmd(opts),
		newCategoriesCmd(opts),
	)

	return cmd
}

// client returns an API client for the configured URL.
func (o *options) client() (*client.Client, error) {
	return client.New(o.apiURL, client.WithLanguage(o.language))
}
