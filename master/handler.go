package main

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/automoto/downhill/shared/leaderboard"
)

// ErrInvalidEntry is returned for a submission the leaderboard won't store.
var ErrInvalidEntry = errors.New("invalid entry")

const maxRequestBody = 1 << 12 // 4 KB

// validate checks a decoded submission. The kind is checked before
// normalizing so a typo is rejected instead of stored as a time. Names
// follow the in-game rule: letters and digits, uppercased.
func validate(e leaderboard.Entry) (leaderboard.Entry, error) {
	if e.Kind != leaderboard.KindTime && e.Kind != leaderboard.KindDistance {
		return e, ErrInvalidEntry
	}
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) || e.Value < 0 {
		return e, ErrInvalidEntry
	}
	e = e.Normalize()
	e.Name = strings.ToUpper(e.Name)
	if !leaderboard.ValidName(e.Name) {
		return e, ErrInvalidEntry
	}
	return e, nil
}

func ListScores(store *Store, limit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		entries, err := store.List(r.Context(), limit)
		if err != nil {
			log.Printf("[master] list error: %v", err)
			http.Error(w, `{"error":"storage"}`, http.StatusInternalServerError)
			return
		}
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			log.Printf("[master] list encode error: %v", err)
		}
	}
}

func SubmitScore(store *Store, limit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var req leaderboard.Entry
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}
		entry, err := validate(req)
		if err != nil {
			http.Error(w, `{"error":"name, kind and a non-negative value required"}`, http.StatusBadRequest)
			return
		}

		entries, rank, err := store.Insert(r.Context(), entry, limit)
		if err != nil {
			log.Printf("[master] insert error: %v", err)
			http.Error(w, `{"error":"storage"}`, http.StatusInternalServerError)
			return
		}
		raw, err := leaderboard.Encode(entries)
		if err != nil {
			http.Error(w, `{"error":"encode"}`, http.StatusInternalServerError)
			return
		}

		log.Printf("[master] %s scored %s (rank %d)", entry.Name, entry.Score(), rank)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(leaderboard.SubmitResponse{Entries: raw, Rank: rank})
	}
}

// Preflight answers CORS preflight requests from browser builds.
func Preflight() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// NewMux routes the leaderboard endpoints.
func NewMux(store *Store, limit int) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /scores", ListScores(store, limit))
	mux.HandleFunc("POST /scores", SubmitScore(store, limit))
	mux.HandleFunc("OPTIONS /scores", Preflight())
	mux.HandleFunc("GET /health", Health())
	return mux
}
