package leaderboard

import (
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLessKinds(t *testing.T) {
	slowFinish := Entry{Name: "A", Kind: KindTime, Value: 999}
	longCrash := Entry{Name: "B", Kind: KindDistance, Value: 1e9}
	if !Less(slowFinish, longCrash) {
		t.Fatalf("time entry must outrank any distance entry")
	}
	if Less(longCrash, slowFinish) {
		t.Fatalf("distance entry must not outrank a time entry")
	}
}

func TestSortOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	var entries []Entry
	for i := 0; i < 200; i++ {
		kind := KindTime
		if r.IntN(2) == 0 {
			kind = KindDistance
		}
		entries = append(entries, Entry{Name: "X", Kind: kind, Value: r.Float64() * 1000})
	}
	Sort(entries)

	seenDistance := false
	for i, e := range entries {
		if e.Kind == KindDistance {
			seenDistance = true
		} else if seenDistance {
			t.Fatalf("entry %d is time-kind after a distance-kind entry", i)
		}
		if i == 0 || entries[i-1].Kind != e.Kind {
			continue
		}
		prev := entries[i-1].Value
		if e.Kind == KindTime && prev > e.Value {
			t.Fatalf("time entries not ascending at %d: %v > %v", i, prev, e.Value)
		}
		if e.Kind == KindDistance && prev < e.Value {
			t.Fatalf("distance entries not descending at %d: %v < %v", i, prev, e.Value)
		}
	}
}

func TestInsertRankAndLimit(t *testing.T) {
	board := []Entry{
		{Name: "ANA", Kind: KindTime, Value: 40},
		{Name: "BOB", Kind: KindTime, Value: 50},
		{Name: "CY", Kind: KindDistance, Value: 900},
	}

	got, rank := Insert(board, Entry{Name: "DEE", Kind: KindTime, Value: 45}, 3)
	if rank != 2 {
		t.Fatalf("rank = %d, want 2", rank)
	}
	if len(got) != 3 || got[2].Name != "BOB" {
		t.Fatalf("board = %+v, want CY truncated", got)
	}
	if len(board) != 3 || board[1].Name != "BOB" {
		t.Fatalf("input was modified: %+v", board)
	}

	_, rank = Insert(board, Entry{Name: "EVE", Kind: KindDistance, Value: 10}, 3)
	if rank != 0 {
		t.Fatalf("rank = %d, want 0 for an entry that falls off", rank)
	}
}

func TestInsertTieRanksBelow(t *testing.T) {
	board := []Entry{{Name: "ANA", Kind: KindTime, Value: 40}}
	got, rank := Insert(board, Entry{Name: "BOB", Kind: KindTime, Value: 40}, 10)
	if rank != 2 || got[0].Name != "ANA" {
		t.Fatalf("tie: rank = %d, board = %+v", rank, got)
	}
}

func TestDecodeDefaultsKind(t *testing.T) {
	data := []byte(`[{"name":"ZED","value":900,"kind":"distance"},{"name":"AMY","value":61.5},{"name":"BEN","value":55,"kind":"weird"}]`)
	entries, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []Entry{
		{Name: "BEN", Kind: KindTime, Value: 55},
		{Name: "AMY", Kind: KindTime, Value: 61.5},
		{Name: "ZED", Kind: KindDistance, Value: 900},
	}
	if len(entries) != len(want) {
		t.Fatalf("len = %d, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode([]byte(`{"oops":`)); err == nil {
		t.Fatalf("Decode() error = nil, want error")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	in := []Entry{
		{Name: "ANA", Kind: KindTime, Value: 40.25},
		{Name: "CY", Kind: KindDistance, Value: 900},
	}
	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %+v, want %+v", i, out[i], in[i])
		}
	}

	empty, _ := Encode(nil)
	if string(empty) != "[]" {
		t.Fatalf("Encode(nil) = %s, want []", empty)
	}
}

func TestScoreFormat(t *testing.T) {
	if got := (Entry{Kind: KindTime, Value: 42.376}).Score(); got != "42.38s" {
		t.Fatalf("Score() = %q", got)
	}
	if got := (Entry{Kind: KindDistance, Value: 1234.9}).Score(); got != "1234m" {
		t.Fatalf("Score() = %q", got)
	}
}

func TestNormalizeMultiByteName(t *testing.T) {
	e := Entry{Name: "A" + strings.Repeat("é", 20), Kind: KindTime, Value: 1}.Normalize()
	if !utf8.ValidString(e.Name) {
		t.Fatalf("Normalize() produced invalid UTF-8: %q", e.Name)
	}
	if n := utf8.RuneCountInString(e.Name); n != MaxNameLength {
		t.Fatalf("rune count = %d, want %d", n, MaxNameLength)
	}

	data, err := Encode([]Entry{e})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(out) != 1 || out[0] != e {
		t.Fatalf("round trip = %+v, want %+v", out, e)
	}
	if Rank(out, e) != 1 {
		t.Fatalf("Rank() missed the decoded entry")
	}
}

func TestValidName(t *testing.T) {
	for name, want := range map[string]bool{
		"ADA":    true,
		"R2D2":   true,
		"":       false,
		"ada":    false,
		"BO B":   false,
		"ÉCLAIR": false,
		"X-1":    false,
	} {
		if got := ValidName(name); got != want {
			t.Fatalf("ValidName(%q) = %v, want %v", name, got, want)
		}
	}
}
