package pagination

import (
	"errors"
	"fmt"

	"github.com/rshade/holdtrack/internal/config"
)

// Paging limits. The page size range is the one the holders endpoint accepts.
const (
	DefaultPageSize = config.DefaultPageSize
	MinPageSize     = config.MinPageSize
	MaxPageSize     = config.MaxPageSize
	// AllPages walks the cursor chain until the server reports no next page.
	AllPages = 0
)

// Validation errors.
var (
	ErrInvalidPageSize = fmt.Errorf("page-size must be between %d and %d", MinPageSize, MaxPageSize)
	ErrInvalidPages    = errors.New("pages cannot be negative")
)

// Params holds the paging flags of a non-interactive listing.
type Params struct {
	// PageSize is the limit sent with every request.
	PageSize int

	// Pages caps how many pages are fetched. AllPages means no cap.
	Pages int
}

// NewParams returns Params with the default page size and no page cap.
func NewParams() Params {
	return Params{PageSize: DefaultPageSize, Pages: AllPages}
}

// Validate checks both flags.
func (p Params) Validate() error {
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Pages < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPages, p.Pages)
	}
	return nil
}

// Reached reports whether fetched pages satisfy the page cap.
func (p Params) Reached(fetched int) bool {
	return p.Pages != AllPages && fetched >= p.Pages
}
