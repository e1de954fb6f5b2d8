package services

import (
	"strings"
	"sync"
	"time"

	"dukicks/models"
)

const (
	DefaultSearchDebounce = 200 * time.Millisecond
	searchBoxResultLimit  = 8
)

type SearchUpdate struct {
	Query       string           `json:"query"`
	Results     []models.Product `json:"results"`
	Suggestions []string         `json:"suggestions"`
}

// SearchBox drives type-ahead search. Each Input cancels any pending
// evaluation and schedules a new one after the idle delay; blank input
// clears the results right away. Only the update for the latest Input is
// ever delivered, so a late evaluation never overwrites a clear.
// onUpdate must not call back into the box.
type SearchBox struct {
	products []models.Product
	limit    int
	debounce *Debouncer
	onUpdate func(SearchUpdate)

	mu    sync.Mutex
	query string
	gen   uint64

	emitMu sync.Mutex
}

func NewSearchBox(products []models.Product, delay time.Duration, suggestionLimit int, onUpdate func(SearchUpdate)) *SearchBox {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}
	return &SearchBox{
		products: products,
		limit:    suggestionLimit,
		debounce: NewDebouncer(delay),
		onUpdate: onUpdate,
	}
}

func (b *SearchBox) Input(query string) {
	b.mu.Lock()
	b.query = query
	b.gen++
	gen := b.gen
	b.mu.Unlock()

	if strings.TrimSpace(query) == "" {
		b.debounce.Cancel()
		b.deliver(gen, SearchUpdate{Query: query, Results: []models.Product{}, Suggestions: []string{}})
		return
	}

	b.debounce.Trigger(func() {
		b.deliver(gen, b.evaluate(query))
	})
}

// deliver hands u to onUpdate unless a newer Input has arrived since gen
// was taken. emitMu keeps a stale delivery that already passed the check
// ahead of the newer one.
func (b *SearchBox) deliver(gen uint64, u SearchUpdate) {
	b.emitMu.Lock()
	defer b.emitMu.Unlock()

	b.mu.Lock()
	current := gen == b.gen
	b.mu.Unlock()
	if current {
		b.onUpdate(u)
	}
}

func (b *SearchBox) Query() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.query
}

// Close cancels any pending evaluation. No update is delivered afterwards.
func (b *SearchBox) Close() {
	b.mu.Lock()
	b.gen++
	b.mu.Unlock()
	b.debounce.Cancel()
}

func (b *SearchBox) evaluate(query string) SearchUpdate {
	results := SearchWithRelevance(b.products, query)
	if len(results) > searchBoxResultLimit {
		results = results[:searchBoxResultLimit]
	}
	return SearchUpdate{
		Query:       query,
		Results:     results,
		Suggestions: Suggestions(b.products, query, b.limit),
	}
}
