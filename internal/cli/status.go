package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/holdtrack/internal/config"
	"github.com/rshade/holdtrack/internal/logging"
	"github.com/rshade/holdtrack/internal/status"
)

// NewStatusCmd creates the status command, which prints the last block synced
// by the indexer.
func NewStatusCmd() *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the last block synced by the indexer",
		Example: `  # One reading
  holdtrack status

  # Poll every 2 seconds until interrupted
  holdtrack status --watch --interval 2s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("interval") {
				if interval <= 0 {
					return config.ErrInvalidInterval
				}
				cfg.Status.Interval = interval
			}

			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			log := logging.FromContext(cmd.Context())
			poller, err := status.NewPoller(client,
				status.WithInterval(cfg.Status.Interval),
				status.WithStaleTime(cfg.Status.StaleTime),
				status.WithLogger(logging.ComponentLogger(*log, "status")))
			if err != nil {
				return err
			}

			if !watch {
				snap, getErr := poller.Get(cmd.Context())
				if getErr != nil {
					return fmt.Errorf("fetching status: %w", getErr)
				}
				printSnapshot(cmd.OutOrStdout(), snap)
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchStatus(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), poller)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep polling until interrupted")
	cmd.Flags().DurationVar(&interval, "interval", config.DefaultStatusInterval, "polling interval for --watch")

	return cmd
}

// watchStatus prints a line per reading until ctx is done. Failed polls are
// reported and polling continues.
func watchStatus(ctx context.Context, out, errOut io.Writer, poller *status.Poller) error {
	poller.Run(ctx, func(snap status.Snapshot, err error) {
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				fmt.Fprintf(errOut, "Failed to load status: %v\n", err)
			}
			return
		}
		printSnapshot(out, snap)
	})
	return nil
}

func printSnapshot(w io.Writer, snap status.Snapshot) {
	p := message.NewPrinter(language.English)
	fmt.Fprintln(w, p.Sprintf("Last synced block: %d", snap.LastBlock))
}
