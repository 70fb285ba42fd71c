package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/automoto/downhill/shared/leaderboard"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "nested", "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreOrdersTimesBeforeDistances(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, e := range []leaderboard.Entry{
		{Name: "CRASH1", Kind: leaderboard.KindDistance, Value: 900},
		{Name: "SLOW", Kind: leaderboard.KindTime, Value: 80},
		{Name: "CRASH2", Kind: leaderboard.KindDistance, Value: 1500},
		{Name: "FAST", Kind: leaderboard.KindTime, Value: 61.5},
	} {
		if _, _, err := s.Insert(ctx, e, 10); err != nil {
			t.Fatalf("insert %s: %v", e.Name, err)
		}
	}

	got, err := s.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"FAST", "SLOW", "CRASH2", "CRASH1"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("entry %d = %s, want %s (%v)", i, got[i].Name, name, got)
		}
	}
}

func TestStoreInsertRank(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	insert := func(name string, kind leaderboard.Kind, v float64) int {
		t.Helper()
		_, rank, err := s.Insert(ctx, leaderboard.Entry{Name: name, Kind: kind, Value: v}, 2)
		if err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
		return rank
	}

	if r := insert("A", leaderboard.KindTime, 70); r != 1 {
		t.Fatalf("first rank = %d, want 1", r)
	}
	if r := insert("B", leaderboard.KindTime, 65); r != 1 {
		t.Fatalf("faster rank = %d, want 1", r)
	}
	// Ties rank behind the earlier submission.
	if r := insert("C", leaderboard.KindTime, 65); r != 2 {
		t.Fatalf("tie rank = %d, want 2", r)
	}
	// Every finished run outranks a crash; rank is reported past the limit.
	if r := insert("D", leaderboard.KindDistance, 5000); r != 4 {
		t.Fatalf("crash rank = %d, want 4", r)
	}

	entries, _, err := s.Insert(ctx, leaderboard.Entry{Name: "E", Kind: leaderboard.KindDistance, Value: 10}, 2)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "B" || entries[1].Name != "C" {
		t.Fatalf("top 2 = %v", entries)
	}
}

func TestStoreReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	ctx := context.Background()

	s, err := OpenStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, _, err := s.Insert(ctx, leaderboard.Entry{Name: "KEEP", Kind: leaderboard.KindTime, Value: 1}, 10); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s, err = OpenStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "KEEP" {
		t.Fatalf("after reopen got %v", got)
	}
}
