package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/holdtrack/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Reads the configuration file, applies HOLDTRACK_* environment overrides and
checks every setting. All problems are reported together.`,
		Example: `  # Validate current configuration
  holdtrack config validate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			cfg.SetConfigPath(config.DefaultPath())
			if err := cfg.Load(); err != nil {
				return err
			}
			cfg.ApplyEnv(os.LookupEnv)

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration is invalid:\n%w", err)
			}

			cmd.Printf("Configuration is valid (%s)\n", cfg.ConfigPath())
			return nil
		},
	}
}

// NewConfigShowCmd creates the config show command, which prints the effective
// configuration as YAML.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configWithFlags(cmd)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			cmd.Printf("# %s\n%s", cfg.ConfigPath(), data)
			return nil
		},
	}
}
