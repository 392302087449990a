package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/holdtrack/internal/holders"
)

const (
	appTitle    = "Holdings Tracker"
	helpText    = "↑/↓ j/k navigate • pgup/pgdn page • r retry • q quit"
	headerGap   = "   "
	ellipsis    = "…"
	addressTrim = colWidthAddress - 1
)

// View renders the browser (Bubble Tea interface).
func (m HoldersModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader(), ""}
	switch viewStateFor(m.loader.Status(), m.loader.FailedMore()) {
	case ViewStateLoading:
		sections = append(sections, m.spinner.View()+" "+InfoStyle.Render("Loading holders…"))
	case ViewStateError:
		sections = append(sections,
			ErrorStyle.Render("Failed to load holders: "+errorText(m.loader.Err())),
			SubtleStyle.Render("Press r to retry"))
	case ViewStateList, ViewStateQuitting:
		sections = append(sections, m.renderListView())
	}
	sections = append(sections, SubtleStyle.Render(helpText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m HoldersModel) renderHeader() string {
	title := TitleStyle.Render(appTitle)
	if m.poller == nil {
		return title
	}

	var status string
	switch {
	case m.statusErr != nil:
		status = ErrorStyle.Render("Failed to load status")
	case m.statusPending || !m.statusLoaded:
		status = SubtleStyle.Render("Loading status…")
	default:
		status = "Last synced block: " + ValueStyle.Render(m.printer.Sprintf("%d", m.snapshot.LastBlock))
	}
	return title + headerGap + status
}

func (m HoldersModel) renderListView() string {
	if m.list.ItemCount() == 0 {
		if m.loader.Status() != holders.StatusExhausted {
			return m.renderFooter()
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			SubtleStyle.Render("No holders found"),
			m.renderFooter())
	}

	columns := HeaderStyle.Render(fmt.Sprintf("%-*s%-*s%*s",
		colWidthMarker, "",
		colWidthAddress, "ADDRESS",
		colWidthBalance, "BALANCE"))

	return lipgloss.JoinVertical(lipgloss.Left, columns, m.list.View(), m.renderFooter())
}

func (m HoldersModel) renderFooter() string {
	loaded := SubtleStyle.Render(m.printer.Sprintf("%d holders loaded", m.list.ItemCount()))

	var state string
	switch m.loader.Status() {
	case holders.StatusLoadingMore:
		state = m.spinner.View() + " " + InfoStyle.Render("Loading more…")
	case holders.StatusExhausted:
		state = SubtleStyle.Render("No more results")
	case holders.StatusError:
		state = ErrorStyle.Render("Failed to load more: "+errorText(m.loader.Err())) +
			" " + SubtleStyle.Render("(r to retry)")
	case holders.StatusIdle, holders.StatusLoading, holders.StatusReady:
	}

	if state == "" {
		return loaded
	}
	return loaded + headerGap + state
}

// renderRow renders one holder as address and right-aligned balance.
func renderRow(row holders.Row, selected bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}
	line := fmt.Sprintf("%-*s%-*s%*s",
		colWidthMarker, marker,
		colWidthAddress, truncate(row.Address, addressTrim),
		colWidthBalance, row.Display.String())
	if selected {
		return SelectedStyle.Render(line)
	}
	return line
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + ellipsis
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return strings.TrimSpace(err.Error())
}
