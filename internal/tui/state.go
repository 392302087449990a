package tui

import "github.com/rshade/holdtrack/internal/holders"

// ViewState selects which body the browser renders.
type ViewState int

const (
	// ViewStateLoading shows the first-page spinner.
	ViewStateLoading ViewState = iota
	// ViewStateError shows a failed first page with a retry hint.
	ViewStateError
	// ViewStateList shows the holder list.
	ViewStateList
	// ViewStateQuitting renders nothing while the program exits.
	ViewStateQuitting
)

// viewStateFor maps a loader status onto the body to render. A failed
// follow-up page keeps the list on screen.
func viewStateFor(status holders.Status, failedMore bool) ViewState {
	switch status {
	case holders.StatusIdle, holders.StatusLoading:
		return ViewStateLoading
	case holders.StatusError:
		if failedMore {
			return ViewStateList
		}
		return ViewStateError
	default:
		return ViewStateList
	}
}
