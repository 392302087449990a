package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/holdtrack/internal/cli/pagination"
	"github.com/rshade/holdtrack/internal/holders"
	"github.com/rshade/holdtrack/internal/logging"
)

// NewHoldersCmd creates the holders command, which walks the cursor chain and
// prints every holder with its formatted balance.
func NewHoldersCmd() *cobra.Command {
	var pages int

	cmd := &cobra.Command{
		Use:   "holders",
		Short: "List token holders with formatted balances",
		Long: `Fetches holders page by page, following the server's cursor until no next
page is reported or --pages pages have been fetched, and prints them in fetch order.

A failed request stops the listing. Holders fetched before the failure are still
printed and the command exits with the error; nothing is retried automatically.`,
		Example: `  # Every holder as a table
  holdtrack holders

  # The first 3 pages of 200 holders
  holdtrack holders --page-size 200 --pages 3

  # Stream holders for jq
  holdtrack holders -o ndjson | jq -r .display.integer`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHolders(cmd, pages)
		},
	}

	cmd.Flags().IntVar(&pages, "pages", pagination.AllPages, "stop after this many pages (0 = all)")

	return cmd
}

func runHolders(cmd *cobra.Command, pages int) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	params := pagination.Params{PageSize: cfg.Holders.PageSize, Pages: pages}
	if err = params.Validate(); err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	loader, err := holders.NewLoader(client, params.PageSize,
		holders.WithLogger(logging.ComponentLogger(*log, "holders")))
	if err != nil {
		return err
	}
	defer loader.Close()

	walkErr := walkPages(ctx, loader, params)

	rows := holders.DisplayRows(loader.Items())
	meta := pagination.NewMeta(params, len(loader.Pages()), len(rows),
		loader.Status() == holders.StatusExhausted)

	log.Debug().
		Int("pages", meta.Pages).
		Int("items", meta.Items).
		Bool("exhausted", meta.Exhausted).
		Msg("holder listing finished")

	if err = renderHolders(cmd.OutOrStdout(), strings.ToLower(cfg.Output.DefaultFormat), rows, meta); err != nil {
		return err
	}
	return walkErr
}

// walkPages drives loader synchronously until the server runs out of pages,
// the page cap is reached or a fetch fails.
func walkPages(ctx context.Context, loader *holders.Loader, params pagination.Params) error {
	req, ok := loader.Initialize()
	for ok {
		if err := loader.Do(ctx, req); err != nil {
			return err
		}
		if params.Reached(len(loader.Pages())) {
			return nil
		}
		req, ok = loader.LoadMore()
	}
	return nil
}
