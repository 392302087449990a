// Package list renders a windowed slice of a growing list in a Bubble Tea view.
//
// Only the rows inside the viewport are rendered, so the cost of a frame does
// not depend on how many items have been appended. The model also reports how
// close the viewport is to the last item, which lets a caller fetch the next
// page before the user reaches the end.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const halfViewportDivisor = 2

// RenderFunc renders one row. selected is true for the highlighted row.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a keyboard-navigable, windowed list.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	selected int

	// [visibleFrom, visibleTo) is the window rendered by View.
	visibleFrom int
	visibleTo   int

	height int
	width  int
}

// New creates a list showing height rows of width columns.
func New[T any](items []T, height, width int, renderFunc RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     max(height, 1),
		width:      width,
	}
	m.updateVisibleRange()
	return m
}

// SetItems replaces the rows, keeping the selection where it was when it is
// still in range.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.clampSelection()
	m.updateVisibleRange()
}

// SetSize changes the viewport dimensions.
func (m *Model[T]) SetSize(height, width int) {
	m.height = max(height, 1)
	m.width = width
	m.updateVisibleRange()
}

// HandleKey moves the selection for navigation keys and reports whether the
// key was one of them.
//
//nolint:exhaustive // Only navigation keys are handled.
func (m *Model[T]) HandleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp:
		m.move(-1)
	case tea.KeyDown:
		m.move(1)
	case tea.KeyPgUp:
		m.move(-m.height)
	case tea.KeyPgDown:
		m.move(m.height)
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return false
		}
		switch msg.Runes[0] {
		case 'j':
			m.move(1)
		case 'k':
			m.move(-1)
		default:
			return false
		}
	default:
		return false
	}
	return true
}

func (m *Model[T]) move(delta int) {
	m.SetSelected(m.selected + delta)
}

func (m *Model[T]) clampSelection() {
	switch {
	case len(m.items) == 0 || m.selected < 0:
		m.selected = 0
	case m.selected >= len(m.items):
		m.selected = len(m.items) - 1
	}
}

// updateVisibleRange centres the window on the selection, pinned to either end.
func (m *Model[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	half := m.height / halfViewportDivisor
	from := m.selected - half
	if from < 0 {
		from = 0
	}
	to := from + m.height
	if to > len(m.items) {
		to = len(m.items)
		from = max(to-m.height, 0)
	}

	m.visibleFrom = from
	m.visibleTo = to
}

// View renders the rows in the window, one per line.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		if i > m.visibleFrom {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.renderFunc(m.items[i], i == m.selected))
	}
	return sb.String()
}

// NearEnd reports whether the end of the list is within margin rows of the
// window. The end of an empty list is always in view.
func (m *Model[T]) NearEnd(margin int) bool {
	return m.visibleTo+margin >= len(m.items)
}

// Items returns the rows.
func (m *Model[T]) Items() []T {
	return m.items
}

// ItemCount returns the number of rows.
func (m *Model[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the selected row index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SetSelected moves the selection, clamped to the list bounds.
func (m *Model[T]) SetSelected(index int) {
	m.selected = index
	m.clampSelection()
	m.updateVisibleRange()
}

// SelectedItem returns the selected row, or nil for an empty list.
func (m *Model[T]) SelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}

// VisibleFrom returns the first rendered index.
func (m *Model[T]) VisibleFrom() int { return m.visibleFrom }

// VisibleTo returns one past the last rendered index.
func (m *Model[T]) VisibleTo() int { return m.visibleTo }

// Height returns the viewport height.
func (m *Model[T]) Height() int { return m.height }

// Width returns the viewport width.
func (m *Model[T]) Width() int { return m.width }
