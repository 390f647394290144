// Package feed keeps the state of the article feeds and the saved articles.
package feed

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Nachthirsch/News-App/app/store"
)

// Surface is an independent list of fetched articles.
type Surface int

// Known surfaces.
const (
	SurfaceLocal Surface = iota
	SurfaceProgramming
	SurfaceSearch
	surfacesCount
)

// String returns the name of the surface.
func (s Surface) String() string {
	switch s {
	case SurfaceLocal:
		return "local"
	case SurfaceProgramming:
		return "programming"
	case SurfaceSearch:
		return "search"
	default:
		return fmt.Sprintf("Surface(%d)", int(s))
	}
}

// ParseSurface returns the surface by its name.
func ParseSurface(name string) (Surface, error) {
	for s := Surface(0); s < surfacesCount; s++ {
		if strings.EqualFold(s.String(), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown surface %q", name)
}

// State is a snapshot of a surface.
type State struct {
	Items       []store.Article
	Page        int
	Loading     bool
	Error       string
	Query       string
	LastUpdated time.Time
}

// Ticket binds a fetch result to the request it was issued with.
type Ticket struct {
	Surface Surface
	Page    int
	IsNew   bool
	Query   string
	gen     uint64
}

// IsNewFetch reports whether the fetch of the page starts the list over.
func IsNewFetch(page int, fresh bool) bool { return fresh || page == 0 }

type surfaceState struct {
	State
	gen     uint64
	pending int
}

// Feeds accumulates fetched pages of every surface.
// Results of fetches superseded by a newer fresh fetch of the same surface
// are discarded.
type Feeds struct {
	mu     sync.Mutex
	states [surfacesCount]surfaceState
	now    func() time.Time
}

// NewFeeds makes empty feeds.
func NewFeeds(now func() time.Time) *Feeds {
	if now == nil {
		now = time.Now
	}
	return &Feeds{now: now}
}

// Begin marks the surface as loading and returns the ticket to report
// the result with.
func (f *Feeds) Begin(s Surface, page int, isNew bool, query string) Ticket {
	f.mu.Lock()
	defer f.mu.Unlock()

	st := &f.states[s]
	if isNew {
		st.gen++
	}
	st.pending++
	st.Loading = true
	st.Error = ""

	return Ticket{Surface: s, Page: page, IsNew: isNew, Query: query, gen: st.gen}
}

// Fulfil applies fetched articles to the surface: a new fetch replaces
// the items, a continuation appends to them. Returns false if the ticket
// was superseded and the result was discarded.
func (f *Feeds) Fulfil(t Ticket, articles []store.Article) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	st := f.finish(t)
	if st == nil {
		return false
	}

	if t.IsNew {
		st.Items = append([]store.Article(nil), articles...)
	} else {
		st.Items = append(st.Items, articles...)
	}

	st.Page = t.Page
	st.Query = t.Query
	st.LastUpdated = f.now()
	return true
}

// Fail records the error of the fetch, items are left untouched.
// Returns false if the ticket was superseded.
func (f *Feeds) Fail(t Ticket, err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	st := f.finish(t)
	if st == nil {
		return false
	}

	st.Error = err.Error()
	return true
}

// finish releases the pending fetch and returns the state to apply its
// result to, or nil if the ticket is stale.
func (f *Feeds) finish(t Ticket) *surfaceState {
	st := &f.states[t.Surface]
	if st.pending > 0 {
		st.pending--
	}
	st.Loading = st.pending > 0

	if t.gen != st.gen {
		return nil
	}
	return st
}

// State returns a snapshot of the surface.
func (f *Feeds) State(s Surface) State {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := f.states[s].State
	res.Items = append([]store.Article(nil), res.Items...)
	return res
}

// ResetPage sets the page of the surface back to zero.
func (f *Feeds) ResetPage(s Surface) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[s].Page = 0
}

// ClearError clears the error of the surface.
func (f *Feeds) ClearError(s Surface) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[s].Error = ""
}
