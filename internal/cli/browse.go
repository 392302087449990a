package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/holdtrack/internal/holders"
	"github.com/rshade/holdtrack/internal/logging"
	"github.com/rshade/holdtrack/internal/status"
	"github.com/rshade/holdtrack/internal/tui"
)

// ErrNotTerminal is returned by browse when stdout is not a terminal.
var ErrNotTerminal = errors.New("browse needs an interactive terminal; use 'holdtrack holders' for scripted output")

// NewBrowseCmd creates the browse command, a full-screen holder list that
// fetches the next page as the end of the list scrolls into view.
func NewBrowseCmd() *cobra.Command {
	var margin int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse token holders interactively",
		Long: `Opens a scrollable holder list. The next page is requested when the end of
the list comes within --prefetch rows of the screen. The header shows the last
block synced by the indexer.

Keys: up/down or j/k move, pgup/pgdn page, home/end jump, r retries a failed
request, q quits.

Logs are discarded unless logging.file is configured.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}

			ctx := cmd.Context()
			log := logging.FromContext(ctx)

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			loader, err := holders.NewLoader(client, cfg.Holders.PageSize,
				holders.WithLogger(logging.ComponentLogger(*log, "holders")))
			if err != nil {
				return err
			}
			poller, err := status.NewPoller(client,
				status.WithInterval(cfg.Status.Interval),
				status.WithStaleTime(cfg.Status.StaleTime),
				status.WithLogger(logging.ComponentLogger(*log, "status")))
			if err != nil {
				return err
			}

			return tui.Run(ctx, loader, tui.WithPoller(poller), tui.WithPrefetchMargin(margin))
		},
	}

	cmd.Flags().IntVar(&margin, "prefetch", tui.DefaultPrefetchMargin,
		"rows before the end of the list at which the next page is requested")

	return cmd
}
