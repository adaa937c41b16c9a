package state

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eringen/folio/catalog"
)

// ErrPageExpired is returned for page IDs the registry no longer holds.
var ErrPageExpired = errors.New("state: page expired")

// Page is the state of one page load: the Shell, the scroll listeners and
// every view container below them. All mutations go through Do.
type Page struct {
	ID string

	mu        sync.Mutex
	catalog   *catalog.Catalog
	listeners *ScrollListeners
	shell     *Shell
	lastSeen  time.Time
}

func newPage(id string, c *catalog.Catalog, now time.Time) *Page {
	p := &Page{ID: id, catalog: c, lastSeen: now}
	p.reset()
	return p
}

func (p *Page) reset() {
	if p.shell != nil && p.shell.Home() != nil {
		p.shell.Home().Unmount()
	}
	p.listeners = NewScrollListeners()
	p.shell = NewShell(p.catalog, p.listeners)
}

// Do runs fn with exclusive access to the page's Shell.
func (p *Page) Do(fn func(*Shell)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p.shell)
}

// Scroll dispatches a scroll observation to the mounted views.
func (p *Page) Scroll(ev ScrollEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners.Dispatch(ev)
}

// Listeners returns how many scroll listeners are attached.
func (p *Page) Listeners() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.listeners.Len()
}

// Reset discards every view and starts over from a fresh Shell.
func (p *Page) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}

func (p *Page) touch(now time.Time) {
	p.mu.Lock()
	p.lastSeen = now
	p.mu.Unlock()
}

func (p *Page) idleSince(cutoff time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSeen.Before(cutoff)
}

// Registry holds the live pages, evicting those idle longer than ttl.
type Registry struct {
	mu      sync.RWMutex
	pages   map[string]*Page
	catalog *catalog.Catalog
	ttl     time.Duration
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

// NewRegistry returns a Registry and starts its eviction loop. A
// non-positive ttl falls back to 30 minutes.
func NewRegistry(c *catalog.Catalog, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	r := &Registry{
		pages:   make(map[string]*Page),
		catalog: c,
		ttl:     ttl,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go r.sweepLoop()
	return r
}

// Create starts a new page load.
func (r *Registry) Create() *Page {
	p := newPage(uuid.NewString(), r.catalog, r.now())
	r.mu.Lock()
	r.pages[p.ID] = p
	r.mu.Unlock()
	return p
}

// Get returns the live page for id and marks it as seen.
func (r *Registry) Get(id string) (*Page, error) {
	r.mu.RLock()
	p, ok := r.pages[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrPageExpired
	}
	p.touch(r.now())
	return p, nil
}

// Len returns the number of live pages.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pages)
}

// Sweep evicts pages idle for longer than the TTL.
func (r *Registry) Sweep() {
	cutoff := r.now().Add(-r.ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.pages {
		if p.idleSince(cutoff) {
			delete(r.pages, id)
		}
	}
}

func (r *Registry) sweepLoop() {
	ticker := time.NewTicker(r.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.Sweep()
		case <-r.stop:
			return
		}
	}
}

// Close stops the eviction loop.
func (r *Registry) Close() {
	r.once.Do(func() { close(r.stop) })
}
