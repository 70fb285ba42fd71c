package core

import (
	"context"
	"errors"
	"testing"
	"time"

	cfg "github.com/automoto/downhill/config"
	"github.com/automoto/downhill/scores"
	"github.com/automoto/downhill/shared/leaderboard"
	"github.com/yohamta/donburi"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

const frame = time.Second / 60

// driver steps a world with a controllable clock and input.
type driver struct {
	t   *testing.T
	w   donburi.World
	now time.Time
}

func newDriver(t *testing.T, opts Options) *driver {
	t.Helper()
	if opts.Now.IsZero() {
		opts.Now = epoch
	}
	return &driver{t: t, w: NewWorld(opts), now: opts.Now}
}

// step advances the clock by d and runs one tick with the given actions held.
func (d *driver) step(dt time.Duration, actions ...cfg.ActionID) {
	d.typeStep(dt, "", actions...)
}

func (d *driver) typeStep(dt time.Duration, chars string, actions ...cfg.ActionID) {
	in := GetInput(d.w)
	in.Advance()
	for _, a := range actions {
		in.Current[a] = true
	}
	in.Chars = append(in.Chars, []rune(chars)...)
	d.now = d.now.Add(dt)
	Step(d.w, d.now)
}

// settle ticks until the leaderboard has no request in flight.
func (d *driver) settle() {
	d.t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for leaderboardLoading(d.w) {
		if time.Now().After(deadline) {
			d.t.Fatalf("leaderboard still loading after deadline")
		}
		time.Sleep(time.Millisecond)
		d.step(time.Millisecond)
	}
}

// until ticks one frame at a time until cond holds.
func (d *driver) until(ticks int, cond func() bool, actions ...cfg.ActionID) {
	d.t.Helper()
	for i := 0; i < ticks; i++ {
		if cond() {
			return
		}
		d.step(frame, actions...)
	}
	if !cond() {
		d.t.Fatalf("condition not reached after %d ticks (phase %s)", ticks, Phase(d.w))
	}
}

type stubStore struct {
	entries []leaderboard.Entry
	err     error
	block   chan struct{}
}

func (s *stubStore) wait() {
	if s.block != nil {
		<-s.block
	}
}

func (s *stubStore) Fetch(context.Context) ([]leaderboard.Entry, error) {
	s.wait()
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

func (s *stubStore) Submit(_ context.Context, e leaderboard.Entry) ([]leaderboard.Entry, int, error) {
	s.wait()
	if s.err != nil {
		return nil, 0, s.err
	}
	out, rank := leaderboard.Insert(s.entries, e, 50)
	s.entries = out
	return out, rank, nil
}

var errOffline = errors.New("offline")

func newBoard(store scores.Store) *scores.Board {
	return scores.NewBoard(store, &scores.MemoryCache{}, 50, time.Second)
}
