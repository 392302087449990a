package holders

import (
	"context"

	"github.com/rshade/holdtrack/internal/amount"
)

// Holder is a single token holder as returned by the server.
// Identity is the address; the value is immutable once received.
type Holder struct {
	Address string `json:"address"`

	// Balance is a base-10 digit string scaled by 10^18.
	Balance string `json:"balance"`
}

// Display returns the holder's balance formatted for rendering.
func (h Holder) Display() amount.Display {
	return amount.Format(h.Balance)
}

// Page is one server response. An empty NextCursor marks the end of the result set.
type Page struct {
	Items      []Holder `json:"items"`
	NextCursor string   `json:"next_cursor"`
}

// HasNext reports whether the server issued a cursor for a following page.
func (p Page) HasNext() bool {
	return p.NextCursor != ""
}

// Fetcher is the page-fetch capability the Loader depends on.
// An empty cursor requests the first page.
type Fetcher interface {
	FetchPage(ctx context.Context, cursor string, limit int) (Page, error)
}

// FetchFunc adapts a plain function to the Fetcher interface.
type FetchFunc func(ctx context.Context, cursor string, limit int) (Page, error)

// FetchPage calls f.
func (f FetchFunc) FetchPage(ctx context.Context, cursor string, limit int) (Page, error) {
	return f(ctx, cursor, limit)
}

// Row is the display output for one holder.
type Row struct {
	Address string         `json:"address"`
	Balance string         `json:"balance"`
	Display amount.Display `json:"display"`
}

// DisplayRows formats every holder in order.
func DisplayRows(items []Holder) []Row {
	rows := make([]Row, len(items))
	for i, h := range items {
		rows[i] = Row{
			Address: h.Address,
			Balance: h.Balance,
			Display: h.Display(),
		}
	}
	return rows
}
