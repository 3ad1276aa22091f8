// Package browser manages a small pool of headless Chrome processes for
// PDF capture. The pool is constructed once in the composition root and
// shared by reference; every renderer leases tabs from the same pool so
// the process count stays bounded.
package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
)

var (
	// ErrPoolClosed is returned by Lease after Shutdown.
	ErrPoolClosed = errors.New("browser: pool closed")

	// ErrBrowserUnavailable is returned when Chrome cannot be launched.
	ErrBrowserUnavailable = errors.New("browser: browser unavailable")
)

const (
	defaultMaxBrowsers   = 1
	defaultIdleTimeout   = 60 * time.Second
	defaultLaunchTimeout = 30 * time.Second
)

// PoolConfig configures the browser pool. Zero values select defaults.
type PoolConfig struct {
	// MaxBrowsers caps concurrent Chrome processes.
	MaxBrowsers int

	// IdleTimeout is how long the pool keeps browsers alive after the
	// last lease is released.
	IdleTimeout time.Duration

	// ChromePath overrides the Chrome binary location.
	ChromePath string

	// LaunchTimeout bounds browser startup.
	LaunchTimeout time.Duration
}

func (c *PoolConfig) applyDefaults() {
	if c.MaxBrowsers <= 0 {
		c.MaxBrowsers = defaultMaxBrowsers
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = defaultIdleTimeout
	}
	if c.LaunchTimeout <= 0 {
		c.LaunchTimeout = defaultLaunchTimeout
	}
}

// handle is one running Chrome process.
type handle struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	leases      int
}

func (h *handle) alive() bool { return h.ctx.Err() == nil }

func (h *handle) close() {
	h.cancel()
	h.allocCancel()
}

// Pool hands out isolated tabs on demand, launching Chrome lazily and
// terminating it after a period of inactivity.
type Pool struct {
	cfg    PoolConfig
	logger *slog.Logger

	mu        sync.Mutex
	browsers  []*handle
	idleTimer *time.Timer
	closed    bool
}

// NewPool builds a pool. No browser is launched until the first Lease.
func NewPool(cfg PoolConfig, logger *slog.Logger) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.applyDefaults()
	return &Pool{cfg: cfg, logger: logger}
}

// Page is a leased browser tab. Ctx drives chromedp actions; Close must
// be called on every exit path.
type Page struct {
	Ctx context.Context

	cancel context.CancelFunc
	pool   *Pool
	owner  *handle
	once   sync.Once
}

// Close releases the tab back to the pool and re-arms the idle timer
// when it was the last one out.
func (p *Page) Close() {
	p.once.Do(func() {
		p.cancel()
		p.pool.release(p.owner)
	})
}

// Lease returns an isolated tab, launching a browser if needed. The
// caller owns the returned Page and must Close it.
func (p *Pool) Lease(ctx context.Context) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrPoolClosed
	}
	if p.idleTimer != nil {
		p.idleTimer.Stop()
		p.idleTimer = nil
	}

	h, err := p.acquireLocked()
	if err != nil {
		return nil, err
	}

	tabCtx, tabCancel := chromedp.NewContext(h.ctx)
	h.leases++
	return &Page{Ctx: tabCtx, cancel: tabCancel, pool: p, owner: h}, nil
}

// acquireLocked finds or launches the least-loaded live browser. Dead
// handles are pruned so a crashed Chrome heals on the next lease.
func (p *Pool) acquireLocked() (*handle, error) {
	live := p.browsers[:0]
	for _, h := range p.browsers {
		if h.alive() {
			live = append(live, h)
			continue
		}
		p.logger.Warn("browser process died, discarding handle")
		h.close()
	}
	p.browsers = live

	var best *handle
	for _, h := range p.browsers {
		if best == nil || h.leases < best.leases {
			best = h
		}
	}
	if best != nil && (best.leases == 0 || len(p.browsers) >= p.cfg.MaxBrowsers) {
		return best, nil
	}

	h, err := p.launch()
	if err != nil {
		if best != nil {
			// A busy browser beats no browser.
			return best, nil
		}
		return nil, err
	}
	p.browsers = append(p.browsers, h)
	return h, nil
}

func (p *Pool) launch() (*handle, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.WSURLReadTimeout(p.cfg.LaunchTimeout),
	)
	if p.cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(p.cfg.ChromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			p.logger.Debug("chromedp: " + fmt.Sprintf(format, args...))
		}),
	)

	launchCtx, cancel := context.WithTimeout(browserCtx, p.cfg.LaunchTimeout)
	defer cancel()
	start := time.Now()
	if err := chromedp.Run(launchCtx); err != nil {
		browserCancel()
		allocCancel()
		p.logger.Error("browser launch failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrBrowserUnavailable, err)
	}

	p.logger.Info("browser launched",
		"duration", time.Since(start),
		"browsers", len(p.browsers)+1,
	)
	return &handle{
		ctx:         browserCtx,
		cancel:      browserCancel,
		allocCancel: allocCancel,
	}, nil
}

func (p *Pool) release(h *handle) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if h.leases > 0 {
		h.leases--
	}
	if p.closed || p.totalLeasesLocked() > 0 || len(p.browsers) == 0 {
		return
	}
	if p.idleTimer != nil {
		p.idleTimer.Stop()
	}
	p.idleTimer = time.AfterFunc(p.cfg.IdleTimeout, p.reapIdle)
}

// reapIdle terminates every browser when the pool has sat unused for the
// idle timeout. A lease taken between the timer firing and the lock being
// acquired wins; the reaper never kills a browser with outstanding leases.
func (p *Pool) reapIdle() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.totalLeasesLocked() > 0 {
		return
	}
	for _, h := range p.browsers {
		h.close()
	}
	if len(p.browsers) > 0 {
		p.logger.Info("idle browsers terminated", "count", len(p.browsers))
	}
	p.browsers = nil
	p.idleTimer = nil
}

func (p *Pool) totalLeasesLocked() int {
	total := 0
	for _, h := range p.browsers {
		total += h.leases
	}
	return total
}

// ActiveLeases reports how many tabs are currently out.
func (p *Pool) ActiveLeases() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalLeasesLocked()
}

// ActiveBrowsers reports how many Chrome processes are running.
func (p *Pool) ActiveBrowsers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, h := range p.browsers {
		if h.alive() {
			n++
		}
	}
	return n
}

// Shutdown force-closes every browser and rejects further leases. The
// context bounds how long Shutdown waits for outstanding leases before
// tearing them down anyway; the context error is returned in that case.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	if p.idleTimer != nil {
		p.idleTimer.Stop()
		p.idleTimer = nil
	}
	p.mu.Unlock()

	var waitErr error
	poll := time.NewTicker(50 * time.Millisecond)
	defer poll.Stop()
	for p.ActiveLeases() > 0 {
		select {
		case <-ctx.Done():
			p.logger.Warn("shutdown deadline reached with active leases",
				"leases", p.ActiveLeases())
			waitErr = ctx.Err()
		case <-poll.C:
			continue
		}
		break
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, h := range p.browsers {
		h.close()
	}
	p.browsers = nil
	p.logger.Info("browser pool shut down")
	return waitErr
}
