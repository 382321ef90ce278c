// Package feed accumulates pages of the discovery feed. The backend owns
// ranking and pagination; the client's only job is appending on "load more"
// and replacing on refresh or filter change, and discarding completions that
// arrive after the view has already moved on.
package feed

import (
	"context"
	"sync"

	"createscale/models"
)

// PageFunc fetches one page for the current filter. api.Client.Feed fits
// after closing over the token.
type PageFunc func(ctx context.Context, profession string, page int) (*models.FeedPage, error)

// Pager holds the accumulated feed state for one screen.
type Pager struct {
	mu         sync.Mutex
	fetch      PageFunc
	profession string
	profiles   []models.FeedProfile
	page       int
	hasNext    bool
	loaded     bool

	// generation stamps every load; a reset bumps it so results from a
	// superseded load are dropped instead of corrupting the new list.
	generation int
}

func NewPager(fetch PageFunc) *Pager {
	return &Pager{fetch: fetch, hasNext: true}
}

// Profiles returns the accumulated rows.
func (p *Pager) Profiles() []models.FeedProfile {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.FeedProfile, len(p.profiles))
	copy(out, p.profiles)
	return out
}

// HasNext reports whether another page is available.
func (p *Pager) HasNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasNext
}

// Profession returns the active filter, "" meaning no filter.
func (p *Pager) Profession() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.profession
}

// Reset switches the filter (or forces a refresh) and loads page one,
// replacing the accumulated list. Any load still in flight is superseded.
func (p *Pager) Reset(ctx context.Context, profession string) error {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.profession = profession
	p.mu.Unlock()

	page, err := p.fetch(ctx, profession, 1)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		// A newer reset won; this result is stale.
		return nil
	}
	p.profiles = append(p.profiles[:0], page.Results...)
	p.page = page.Page
	p.hasNext = page.HasNext
	p.loaded = true
	return nil
}

// LoadMore appends the next page. A no-op when the last page is already
// loaded or when nothing was loaded yet.
func (p *Pager) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if !p.loaded || !p.hasNext {
		p.mu.Unlock()
		return nil
	}
	gen := p.generation
	profession := p.profession
	next := p.page + 1
	p.mu.Unlock()

	page, err := p.fetch(ctx, profession, next)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		return nil
	}
	p.profiles = append(p.profiles, page.Results...)
	p.page = page.Page
	p.hasNext = page.HasNext
	return nil
}
