package holders

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// Status is the Loader's current state.
type Status int

const (
	// StatusIdle means no fetch has been issued yet.
	StatusIdle Status = iota
	// StatusLoading means the first page is in flight.
	StatusLoading
	// StatusReady means at least one page is loaded and another can be requested.
	StatusReady
	// StatusLoadingMore means a follow-up page is in flight.
	StatusLoadingMore
	// StatusError means the last fetch failed; Retry repeats it.
	StatusError
	// StatusExhausted means the server reported no further pages.
	StatusExhausted
)

// String returns the lower-case state name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusLoadingMore:
		return "loadingMore"
	case StatusError:
		return "error"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Fetching reports whether a fetch is outstanding in this state.
func (s Status) Fetching() bool {
	return s == StatusLoading || s == StatusLoadingMore
}

const fetchOp = "fetch holders"

// Request identifies one fetch attempt. It is handed out by Initialize, LoadMore
// and Retry and must be passed back to Complete together with the fetch result.
type Request struct {
	// Cursor is the cursor to fetch with ("" for the first page).
	Cursor string

	// More is true for follow-up pages and false for the first page.
	More bool

	generation uint64
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for fetch lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// Loader turns a cursor-paginated server list into one ordered, growing sequence.
// It is safe for concurrent use; every state transition happens under one mutex.
type Loader struct {
	fetcher  Fetcher
	pageSize int
	logger   zerolog.Logger

	mu          sync.Mutex
	pages       []Page
	status      Status
	err         error
	failed      Request
	generation  uint64
	initialized bool
	closed      bool
}

// NewLoader creates an idle Loader that requests pageSize items per page.
func NewLoader(fetcher Fetcher, pageSize int, opts ...Option) (*Loader, error) {
	if fetcher == nil {
		return nil, ErrNilFetcher
	}
	if pageSize < 1 {
		return nil, ErrInvalidPageSize
	}

	l := &Loader{
		fetcher:  fetcher,
		pageSize: pageSize,
		logger:   zerolog.Nop(),
		status:   StatusIdle,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Initialize begins the first fetch. It succeeds at most once per Loader.
func (l *Loader) Initialize() (Request, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.initialized {
		return Request{}, false
	}
	l.initialized = true
	return l.beginLocked(StatusLoading, Request{}), true
}

// LoadMore begins a fetch for the page after the last one. It is a no-op unless
// the loader is ready and the last page carried a cursor, which also makes it a
// no-op while any fetch is in flight.
func (l *Loader) LoadMore() (Request, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.status != StatusReady || len(l.pages) == 0 {
		return Request{}, false
	}
	last := l.pages[len(l.pages)-1]
	if !last.HasNext() {
		return Request{}, false
	}
	return l.beginLocked(StatusLoadingMore, Request{Cursor: last.NextCursor, More: true}), true
}

// Retry repeats the failed fetch with the same cursor. It is valid only in the
// error state. Each call is a single attempt.
func (l *Loader) Retry() (Request, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.status != StatusError {
		return Request{}, false
	}
	next := StatusLoading
	if l.failed.More {
		next = StatusLoadingMore
	}
	return l.beginLocked(next, Request{Cursor: l.failed.Cursor, More: l.failed.More}), true
}

// beginLocked moves into a fetching state and tags req with a fresh generation.
func (l *Loader) beginLocked(next Status, req Request) Request {
	l.generation++
	req.generation = l.generation
	l.status = next

	l.logger.Debug().
		Str("status", next.String()).
		Str("cursor", req.Cursor).
		Int("pages", len(l.pages)).
		Msg("fetch started")
	return req
}

// Fetch performs the fetch described by req. It does not touch loader state;
// the result must be handed to Complete. Failures are returned as *TransportError.
func (l *Loader) Fetch(ctx context.Context, req Request) (Page, error) {
	page, err := l.fetcher.FetchPage(ctx, req.Cursor, l.pageSize)
	if err != nil {
		return Page{}, asTransportError(err, req.Cursor)
	}
	return page, nil
}

// Complete applies the result of req. It returns false and changes nothing when
// the request is stale: the loader was closed or req is not the fetch currently
// in flight. A failure keeps every page fetched so far.
func (l *Loader) Complete(req Request, page Page, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || !l.status.Fetching() || req.generation != l.generation {
		l.logger.Debug().
			Str("cursor", req.Cursor).
			Bool("closed", l.closed).
			Msg("discarding stale fetch result")
		return false
	}

	if err != nil {
		l.status = StatusError
		l.err = asTransportError(err, req.Cursor)
		l.failed = req
		l.logger.Warn().
			Err(l.err).
			Str("cursor", req.Cursor).
			Bool("more", req.More).
			Msg("fetch failed")
		return true
	}

	l.pages = append(l.pages, page)
	l.err = nil
	l.failed = Request{}
	if page.HasNext() {
		l.status = StatusReady
	} else {
		l.status = StatusExhausted
	}

	l.logger.Debug().
		Int("items", len(page.Items)).
		Int("pages", len(l.pages)).
		Str("status", l.status.String()).
		Msg("page appended")
	return true
}

// Do fetches req and applies the result. It is the synchronous driver used by
// non-interactive callers; it returns the fetch error, if any.
func (l *Loader) Do(ctx context.Context, req Request) error {
	page, err := l.Fetch(ctx, req)
	l.Complete(req, page, err)
	return err
}

// Close disposes the loader. Results of fetches still in flight are discarded
// and every later operation is a no-op.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	l.generation++
}

// Items returns every holder across all pages in fetch order, then page order.
// It is rebuilt from the pages on every call.
func (l *Loader) Items() []Holder {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, p := range l.pages {
		n += len(p.Items)
	}
	items := make([]Holder, 0, n)
	for _, p := range l.pages {
		items = append(items, p.Items...)
	}
	return items
}

// Pages returns a copy of the fetched pages.
func (l *Loader) Pages() []Page {
	l.mu.Lock()
	defer l.mu.Unlock()

	pages := make([]Page, len(l.pages))
	copy(pages, l.pages)
	return pages
}

// Status returns the current state.
func (l *Loader) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Err returns the failure retained by the error state, or nil.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// FailedMore reports whether the retained failure was a follow-up page fetch.
func (l *Loader) FailedMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status == StatusError && l.failed.More
}

// PageSize returns the number of items requested per page.
func (l *Loader) PageSize() int {
	return l.pageSize
}

func asTransportError(err error, cursor string) error {
	var te *TransportError
	if errors.As(err, &te) {
		return err
	}
	return &TransportError{Op: fetchOp, Cursor: cursor, Err: err}
}
