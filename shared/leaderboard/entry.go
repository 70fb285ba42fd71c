// Package leaderboard defines score entries and their ranking order. It is
// shared by the game client and the master server and must stay free of
// ebiten or any graphics dependency.
package leaderboard

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Kind is what a score measures.
type Kind string

const (
	KindTime     Kind = "time"     // Seconds to finish; lower is better
	KindDistance Kind = "distance" // Metres before crashing; higher is better
)

// MaxNameLength bounds stored names.
const MaxNameLength = 16

// Entry is one leaderboard row. Rank is implicit in its position.
type Entry struct {
	Name  string  `json:"name"`
	Kind  Kind    `json:"kind"`
	Value float64 `json:"value"`
}

// SubmitResponse is the body the master server answers a submission with.
type SubmitResponse struct {
	Entries json.RawMessage `json:"entries"`
	Rank    int             `json:"rank"`
}

// Normalize fills defaults for fields a server may omit or garble.
func (e Entry) Normalize() Entry {
	if e.Kind != KindDistance {
		e.Kind = KindTime
	}
	e.Name = strings.TrimSpace(e.Name)
	if utf8.RuneCountInString(e.Name) > MaxNameLength {
		e.Name = string([]rune(e.Name)[:MaxNameLength])
	}
	return e
}

// IsNameRune reports whether r may appear in a submitted name.
func IsNameRune(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// ValidName reports whether name is non-empty and made of name runes only.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !IsNameRune(r) {
			return false
		}
	}
	return true
}

// Score formats the value for display.
func (e Entry) Score() string {
	if e.Kind == KindDistance {
		return fmt.Sprintf("%dm", int(e.Value))
	}
	return fmt.Sprintf("%.2fs", e.Value)
}

// Less reports whether a outranks b. Finished runs always outrank crashes.
func Less(a, b Entry) bool {
	if a.Kind != b.Kind {
		return a.Kind == KindTime
	}
	if a.Kind == KindDistance {
		return a.Value > b.Value
	}
	return a.Value < b.Value
}

// Sort orders entries best first. Equal scores keep their relative order.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return Less(entries[i], entries[j])
	})
}

// Truncate drops everything beyond the first limit entries.
func Truncate(entries []Entry, limit int) []Entry {
	if limit >= 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

// Insert returns a new sorted, truncated slice containing e and the 1-based
// rank e landed at, or 0 if it fell off the end. entries must already be
// sorted and are not modified.
func Insert(entries []Entry, e Entry, limit int) ([]Entry, int) {
	e = e.Normalize()
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries...)

	// Ties rank below existing entries.
	pos := sort.Search(len(out), func(i int) bool {
		return Less(e, out[i])
	})
	out = append(out, Entry{})
	copy(out[pos+1:], out[pos:])
	out[pos] = e

	out = Truncate(out, limit)
	if pos >= len(out) {
		return out, 0
	}
	return out, pos + 1
}

// Rank returns the 1-based position of the first entry equal to e, or 0.
func Rank(entries []Entry, e Entry) int {
	e = e.Normalize()
	for i, other := range entries {
		if other == e {
			return i + 1
		}
	}
	return 0
}

// Decode parses a JSON array of entries, filling defaults and sorting.
func Decode(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode leaderboard: %w", err)
	}
	for i := range entries {
		entries[i] = entries[i].Normalize()
	}
	Sort(entries)
	return entries, nil
}

// Encode serializes entries as a JSON array; nil encodes as [].
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(entries)
}
