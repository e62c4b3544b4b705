package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"set-game-server/api"
	"set-game-server/config"
	"set-game-server/loghandler"
	"set-game-server/metrics"
	"set-game-server/registry"
	"set-game-server/storage"
	"set-game-server/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found; using environment variables", "tag", "main")
	}

	slog.SetDefault(slog.New(loghandler.NewCompactHandler(os.Stdout, slog.LevelInfo)))

	cfg := config.Load()
	slog.Info("configuration loaded", "tag", "main",
		"initialDeal", cfg.InitialDeal, "roomCodeLength", cfg.RoomCodeLength,
		"wsPort", cfg.WSPort, "persistence", cfg.DatabaseURL != "")

	ctx := context.Background()

	// Claim-history store; nil when DATABASE_URL is unset.
	store, err := storage.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("connecting to database", "tag", "main", "err", err)
		os.Exit(1)
	}
	if store != nil {
		defer store.Close()
		slog.Info("claim history persistence enabled", "tag", "main")
	}

	m := metrics.New("setgame")

	reg := registry.New(cfg)
	reg.Stats = m
	reg.OnRoomsChanged = m.SetActiveRooms
	if store != nil {
		reg.OnClaimAccepted = func(code, playerName string) {
			// Fire-and-forget: persistence failures never affect game state.
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := store.RecordClaim(ctx, code, playerName); err != nil {
					slog.Error("recording claim", "tag", "main", "err", err)
				}
			}()
		}
	}

	hub := ws.NewHub(cfg, reg)
	hub.OnClientsChanged = m.SetConnectedClients
	go hub.Run(ctx)

	handler := api.NewHandler(cfg, storeOrNil(store), reg)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	mux.HandleFunc("/api/leaderboard", handler.Leaderboard)
	mux.HandleFunc("/api/rooms", handler.Rooms)
	mux.HandleFunc("/healthz", handler.Health)
	if cfg.MetricsEnabled {
		mux.Handle("/metrics", m.Handler())
	}

	addr := fmt.Sprintf(":%d", cfg.WSPort)
	slog.Info("set game server listening", "tag", "main", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("server stopped", "tag", "main", "err", err)
		os.Exit(1)
	}
}

// storeOrNil keeps a typed-nil *Store out of the ClaimStore interface so
// handlers can use a plain nil check.
func storeOrNil(s *storage.Store) storage.ClaimStore {
	if s == nil {
		return nil
	}
	return s
}
