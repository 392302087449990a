// Package status polls the server's sync status (the last indexed block)
// on a fixed interval, reusing a fresh result for a configurable stale time.
package status

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/rshade/holdtrack/internal/cache"
)

const (
	// DefaultInterval is the polling interval.
	DefaultInterval = 5 * time.Second

	// DefaultStaleTime is how long a fetched snapshot is reused.
	DefaultStaleTime = 3 * time.Second

	snapshotKey = "status"
)

// ErrNilFetcher is returned by NewPoller without a fetcher.
var ErrNilFetcher = errors.New("status fetcher is required")

// Snapshot is one status reading.
type Snapshot struct {
	LastBlock int64     `json:"last_block"`
	FetchedAt time.Time `json:"-"`
}

// Fetcher is the status capability.
type Fetcher interface {
	FetchStatus(ctx context.Context) (Snapshot, error)
}

// Option configures a Poller.
type Option func(*Poller)

// WithInterval sets the polling interval used by Run.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithStaleTime sets how long a snapshot is served from cache. Zero disables reuse.
func WithStaleTime(d time.Duration) Option {
	return func(p *Poller) {
		p.staleTime = d
	}
}

// WithLogger sets the poller's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Poller) {
		p.logger = logger
	}
}

// Poller fetches status snapshots. Concurrent Get calls share one fetch.
type Poller struct {
	fetcher   Fetcher
	interval  time.Duration
	staleTime time.Duration
	logger    zerolog.Logger

	cache *cache.TTLCache[string, Snapshot]
	group singleflight.Group
}

// NewPoller builds a Poller around fetcher.
func NewPoller(fetcher Fetcher, opts ...Option) (*Poller, error) {
	if fetcher == nil {
		return nil, ErrNilFetcher
	}
	p := &Poller{
		fetcher:   fetcher,
		interval:  DefaultInterval,
		staleTime: DefaultStaleTime,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.cache = cache.NewTTL[string, Snapshot](1, p.staleTime)
	return p, nil
}

// Interval returns the polling interval.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Get returns a snapshot no older than the stale time, fetching when needed.
func (p *Poller) Get(ctx context.Context) (Snapshot, error) {
	if snap, ok := p.cache.Get(snapshotKey); ok {
		return snap, nil
	}

	ch := p.group.DoChan(snapshotKey, func() (any, error) {
		snap, err := p.fetcher.FetchStatus(context.WithoutCancel(ctx))
		if err != nil {
			return Snapshot{}, err
		}
		if snap.FetchedAt.IsZero() {
			snap.FetchedAt = time.Now()
		}
		p.cache.Set(snapshotKey, snap)
		return snap, nil
	})

	select {
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			p.logger.Warn().Err(res.Err).Msg("status fetch failed")
			return Snapshot{}, res.Err
		}
		snap, _ := res.Val.(Snapshot)
		p.logger.Debug().Int64("last_block", snap.LastBlock).Bool("shared", res.Shared).Msg("status fetched")
		return snap, nil
	}
}

// Run calls fn with a fresh reading immediately and then once per interval
// until ctx is done. Failures are passed to fn and wait for the next tick.
func (p *Poller) Run(ctx context.Context, fn func(Snapshot, error)) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		snap, err := p.Get(ctx)
		if ctx.Err() != nil {
			return
		}
		fn(snap, err)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
