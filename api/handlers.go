package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"set-game-server/config"
	"set-game-server/registry"
	"set-game-server/storage"
)

// Handler holds dependencies for the REST handlers.
type Handler struct {
	Config     *config.Config
	ClaimStore storage.ClaimStore
	Registry   *registry.Registry
}

// NewHandler creates a new API handler with the given dependencies.
// ClaimStore may be nil when persistence is disabled.
func NewHandler(cfg *config.Config, store storage.ClaimStore, reg *registry.Registry) *Handler {
	return &Handler{
		Config:     cfg,
		ClaimStore: store,
		Registry:   reg,
	}
}

// CORS sets CORS headers on the response. Call before writing body.
// Returns true if the request was a preflight and has been answered.
func CORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return true
	}
	return false
}

// Leaderboard returns the top players by accepted claims.
// Optional query param: limit.
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	if CORS(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entries := []storage.LeaderboardEntry{}
	if h.ClaimStore != nil {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}
		var err error
		entries, err = h.ClaimStore.Leaderboard(r.Context(), limit)
		if err != nil {
			slog.Error("listing leaderboard", "tag", "api", "err", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if entries == nil {
			entries = []storage.LeaderboardEntry{}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// Rooms lists live rooms with player counts.
func (h *Handler) Rooms(w http.ResponseWriter, r *http.Request) {
	if CORS(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	infos := h.Registry.Snapshot()
	if infos == nil {
		infos = []registry.RoomInfo{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(infos)
}

// Health is a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
