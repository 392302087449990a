package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/holdtrack/internal/cli/pagination"
	"github.com/rshade/holdtrack/internal/config"
	"github.com/rshade/holdtrack/internal/holders"
)

const (
	tabPadding = 2
	jsonIndent = "  "

	addressHeading = "ADDRESS"
	balanceHeading = "BALANCE"
)

// holdersDocument is the json output of the holders command.
type holdersDocument struct {
	Items []holders.Row `json:"items"`
	pagination.Meta
}

func renderHolders(w io.Writer, format string, rows []holders.Row, meta pagination.Meta) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", jsonIndent)
		return enc.Encode(holdersDocument{Items: rows, Meta: meta})

	case config.OutputNDJSON:
		enc := json.NewEncoder(w)
		for _, row := range rows {
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
		return enc.Encode(meta)

	default:
		return renderHoldersTable(w, rows, meta)
	}
}

// renderHoldersTable prints addresses left-aligned and balances right-aligned.
func renderHoldersTable(w io.Writer, rows []holders.Row, meta pagination.Meta) error {
	balances := make([]string, len(rows))
	width := len(balanceHeading)
	for i, row := range rows {
		balances[i] = row.Display.String()
		width = max(width, len(balances[i]))
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(tw, "%s\t%*s\n", addressHeading, width, balanceHeading)
	for i, row := range rows {
		fmt.Fprintf(tw, "%s\t%*s\n", row.Address, width, balances[i])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	summary := p.Sprintf("\n%d holders in %d pages", meta.Items, meta.Pages)
	if !meta.Exhausted {
		summary += " (more available)"
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}
