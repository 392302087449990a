package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/holdtrack/internal/api"
	"github.com/rshade/holdtrack/internal/cli/pagination"
	"github.com/rshade/holdtrack/internal/config"
	"github.com/rshade/holdtrack/internal/logging"
)

// annotationInteractive marks commands that own the terminal. Their logs never
// go to stderr.
const annotationInteractive = "holdtrack/interactive"

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the holdtrack CLI.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "holdtrack",
		Short:         "Browse token holder balances",
		Long:          "holdtrack: list and browse token holders served by a holdings API",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("api-url", "", "holdings API base URL (overrides config and "+config.EnvAPIURL+")")
	cmd.PersistentFlags().Int("page-size", 0, fmt.Sprintf("holders per request, %d-%d (0 = use config)",
		pagination.MinPageSize, pagination.MaxPageSize))
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json or ndjson (default from config)")

	cmd.AddCommand(NewHoldersCmd(), NewBrowseCmd(), NewStatusCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # List every holder
  holdtrack holders

  # First two pages of 100 holders as JSON
  holdtrack holders --page-size 100 --pages 2 --output json

  # Browse holders interactively
  holdtrack browse

  # Follow the indexer
  holdtrack status --watch

  # Point at another API
  holdtrack holders --api-url https://holders.example.com

  # Initialize configuration
  holdtrack config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}

// configWithFlags returns a copy of the global configuration with the
// persistent flags applied on top.
func configWithFlags(cmd *cobra.Command) (*config.Config, error) {
	cfg := *config.GetGlobalConfig()
	flags := cmd.Flags()

	if flags.Changed("api-url") {
		cfg.API.BaseURL, _ = flags.GetString("api-url")
	}
	if flags.Changed("page-size") {
		if n, _ := flags.GetInt("page-size"); n != 0 {
			if err := (pagination.Params{PageSize: n}).Validate(); err != nil {
				return nil, err
			}
			cfg.Holders.PageSize = n
		}
	}
	if flags.Changed("output") {
		cfg.Output.DefaultFormat, _ = flags.GetString("output")
	}
	return &cfg, nil
}

// resolveConfig is configWithFlags followed by validation.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := configWithFlags(cmd)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newClient builds the API client for cfg.
func newClient(cfg *config.Config) (*api.Client, error) {
	return api.New(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logging.ComponentLogger(logger, "api")),
	)
}
