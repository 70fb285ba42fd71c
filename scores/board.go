package scores

import (
	"context"
	"log"
	"time"

	"github.com/automoto/downhill/shared/leaderboard"
)

// Op names the request an Outcome answers.
type Op int

const (
	OpFetch Op = iota
	OpSubmit
)

func (o Op) String() string {
	if o == OpSubmit {
		return "submit"
	}
	return "fetch"
}

// Outcome is the result of one background request. When Err is set the
// request failed and Entries holds the fallback view: the cached board for a
// fetch, the board with the entry inserted locally for a submit.
type Outcome struct {
	Op      Op
	Entries []leaderboard.Entry
	Rank    int
	Err     error
}

// Fallback reports whether Entries came from local data.
func (o Outcome) Fallback() bool {
	return o.Err != nil
}

// Board is the leaderboard as seen by the simulation goroutine. Requests run
// in their own goroutines and report back through Poll; only one request is
// in flight at a time and Loading gates new ones.
type Board struct {
	store   Store
	cache   Cache
	limit   int
	timeout time.Duration

	entries []leaderboard.Entry
	loading bool
	results chan Outcome
}

// NewBoard creates a board and loads the cache synchronously so there is
// something to show before the first response arrives.
func NewBoard(store Store, cache Cache, limit int, timeout time.Duration) *Board {
	b := &Board{
		store:   store,
		cache:   cache,
		limit:   limit,
		timeout: timeout,
		results: make(chan Outcome, 1),
	}
	if cache != nil {
		entries, err := cache.Load()
		if err != nil {
			log.Printf("Warning: Could not load leaderboard cache: %v", err)
		}
		b.entries = leaderboard.Truncate(entries, limit)
	}
	return b
}

// Entries returns the current view, best first. Callers must not modify it.
func (b *Board) Entries() []leaderboard.Entry {
	return b.entries
}

// Loading reports whether a request is in flight.
func (b *Board) Loading() bool {
	return b.loading
}

// Refresh starts a background fetch. It returns false if a request is
// already in flight.
func (b *Board) Refresh() bool {
	if b.loading {
		return false
	}
	b.loading = true
	fallback := append([]leaderboard.Entry(nil), b.entries...)

	go func() {
		ctx, cancel := b.context()
		defer cancel()

		entries, err := b.store.Fetch(ctx)
		if err != nil {
			log.Printf("[scores] fetch failed, using cached board: %v", err)
			b.results <- Outcome{Op: OpFetch, Entries: fallback, Err: err}
			return
		}
		b.results <- Outcome{Op: OpFetch, Entries: leaderboard.Truncate(entries, b.limit)}
	}()
	return true
}

// Submit starts a background submission. It returns false if a request is
// already in flight.
func (b *Board) Submit(e leaderboard.Entry) bool {
	if b.loading {
		return false
	}
	b.loading = true
	e = e.Normalize()
	current := append([]leaderboard.Entry(nil), b.entries...)

	go func() {
		ctx, cancel := b.context()
		defer cancel()

		entries, rank, err := b.store.Submit(ctx, e)
		if err != nil {
			log.Printf("[scores] submit failed, inserting locally: %v", err)
			local, localRank := leaderboard.Insert(current, e, b.limit)
			b.results <- Outcome{Op: OpSubmit, Entries: local, Rank: localRank, Err: err}
			return
		}
		entries = leaderboard.Truncate(entries, b.limit)
		if rank == 0 {
			rank = leaderboard.Rank(entries, e)
		}
		b.results <- Outcome{Op: OpSubmit, Entries: entries, Rank: rank}
	}()
	return true
}

// Poll applies a finished request, if any, without blocking. It must be
// called from the goroutine that owns the board.
func (b *Board) Poll() (Outcome, bool) {
	select {
	case o := <-b.results:
		b.entries = o.Entries
		b.loading = false
		if !o.Fallback() && b.cache != nil {
			if err := b.cache.Save(o.Entries); err != nil {
				log.Printf("Warning: Could not save leaderboard cache: %v", err)
			}
		}
		return o, true
	default:
		return Outcome{}, false
	}
}

func (b *Board) context() (context.Context, context.CancelFunc) {
	if b.timeout > 0 {
		return context.WithTimeout(context.Background(), b.timeout)
	}
	return context.WithCancel(context.Background())
}
