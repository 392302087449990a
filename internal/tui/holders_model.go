package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/holdtrack/internal/holders"
	"github.com/rshade/holdtrack/internal/status"
	"github.com/rshade/holdtrack/internal/tui/list"
)

// DefaultPrefetchMargin is how many rows before the last holder the next page
// is requested.
const DefaultPrefetchMargin = 5

const defaultListHeight = 20

// PageLoadedMsg carries the result of one loader fetch back to the model.
type PageLoadedMsg struct {
	Request holders.Request
	Page    holders.Page
	Err     error
}

// StatusLoadedMsg carries the result of one status poll.
type StatusLoadedMsg struct {
	Snapshot status.Snapshot
	Err      error
}

type statusTickMsg struct{}

// Option configures a HoldersModel.
type Option func(*HoldersModel)

// WithPoller shows the indexer status in the header, refreshed at the
// poller's interval.
func WithPoller(p *status.Poller) Option {
	return func(m *HoldersModel) {
		m.poller = p
	}
}

// WithPrefetchMargin overrides DefaultPrefetchMargin. Negative values are ignored.
func WithPrefetchMargin(rows int) Option {
	return func(m *HoldersModel) {
		if rows >= 0 {
			m.prefetchMargin = rows
		}
	}
}

// HoldersModel is the Bubble Tea model of the holder browser. Paging state
// lives in the loader; the model owns only what is on screen.
type HoldersModel struct {
	ctx     context.Context
	loader  *holders.Loader
	poller  *status.Poller
	list    *list.Model[holders.Row]
	spinner spinner.Model
	printer *message.Printer

	width  int
	height int

	prefetchMargin int

	// boundaryVisible is the last observed visibility of the end of the list.
	// A page is requested only when it flips from false to true.
	boundaryVisible bool

	snapshot      status.Snapshot
	statusLoaded  bool
	statusErr     error
	statusPending bool

	quitting bool
}

// NewHoldersModel creates a browser over loader. The loader must be idle;
// Init issues the first fetch.
func NewHoldersModel(ctx context.Context, loader *holders.Loader, opts ...Option) HoldersModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = InfoStyle

	m := HoldersModel{
		ctx:            ctx,
		loader:         loader,
		spinner:        s,
		printer:        message.NewPrinter(language.English),
		prefetchMargin: DefaultPrefetchMargin,
	}
	m.list = list.New[holders.Row](nil, defaultListHeight, 0, renderRow)
	for _, opt := range opts {
		opt(&m)
	}
	m.statusPending = m.poller != nil
	return m
}

// Init starts the spinner, the first page fetch and the status poll.
func (m HoldersModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if req, ok := m.loader.Initialize(); ok {
		cmds = append(cmds, fetchPageCmd(m.ctx, m.loader, req))
	}
	if m.poller != nil {
		cmds = append(cmds, fetchStatusCmd(m.ctx, m.poller))
	}
	return tea.Batch(cmds...)
}

// Update handles Bubble Tea messages.
func (m HoldersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(max(msg.Height-chromeHeight, minListHeight), msg.Width)
		cmd := m.checkBoundary()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case PageLoadedMsg:
		return m.handlePageLoaded(msg)

	case StatusLoadedMsg:
		if m.poller == nil {
			return m, nil
		}
		m.statusPending = false
		if msg.Err != nil {
			m.statusErr = msg.Err
		} else {
			m.snapshot = msg.Snapshot
			m.statusLoaded = true
			m.statusErr = nil
		}
		return m, scheduleStatusTick(m.poller.Interval())

	case statusTickMsg:
		if m.quitting || m.poller == nil {
			return m, nil
		}
		return m, fetchStatusCmd(m.ctx, m.poller)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m HoldersModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.loader.Close()
		m.quitting = true
		return m, tea.Quit
	case "r":
		if req, ok := m.loader.Retry(); ok {
			return m, fetchPageCmd(m.ctx, m.loader, req)
		}
		return m, nil
	}

	if m.list.HandleKey(msg) {
		cmd := m.checkBoundary()
		return m, cmd
	}
	return m, nil
}

func (m HoldersModel) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.loader.Complete(msg.Request, msg.Page, msg.Err) {
		return m, nil
	}
	if msg.Err != nil {
		return m, nil
	}

	m.list.SetItems(holders.DisplayRows(m.loader.Items()))
	// A new page moves the end of the list, so the boundary has to be seen
	// again before the next request.
	m.boundaryVisible = false
	cmd := m.checkBoundary()
	return m, cmd
}

// checkBoundary requests the next page when the end of the list has just come
// within the prefetch margin of the viewport.
func (m *HoldersModel) checkBoundary() tea.Cmd {
	visible := m.list.NearEnd(m.prefetchMargin)
	if !visible {
		m.boundaryVisible = false
		return nil
	}
	if m.boundaryVisible {
		return nil
	}
	m.boundaryVisible = true

	req, ok := m.loader.LoadMore()
	if !ok {
		return nil
	}
	return fetchPageCmd(m.ctx, m.loader, req)
}

func fetchPageCmd(ctx context.Context, loader *holders.Loader, req holders.Request) tea.Cmd {
	return func() tea.Msg {
		page, err := loader.Fetch(ctx, req)
		return PageLoadedMsg{Request: req, Page: page, Err: err}
	}
}

func fetchStatusCmd(ctx context.Context, poller *status.Poller) tea.Cmd {
	return func() tea.Msg {
		snap, err := poller.Get(ctx)
		return StatusLoadedMsg{Snapshot: snap, Err: err}
	}
}

func scheduleStatusTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}

// Run starts the browser full screen and blocks until the user quits.
func Run(ctx context.Context, loader *holders.Loader, opts ...Option) error {
	m := NewHoldersModel(ctx, loader, opts...)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	loader.Close()
	return err
}
