package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"lareserve-backend/configs"
	"lareserve-backend/middlewares"
	"lareserve-backend/pkg/storage"
	"lareserve-backend/repository"
	"lareserve-backend/routes"
	"lareserve-backend/ws"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		slog.Error("connect database failed", "error", err)
		os.Exit(1)
	}
	if err := configs.SetupDatabase(db); err != nil {
		slog.Error("migrate failed", "error", err)
		os.Exit(1)
	}

	if err := configs.SeedAdmin(db, cfg); err != nil {
		slog.Error("seed admin failed", "error", err)
		os.Exit(1)
	}
	if err := configs.SeedRestaurantInfo(db); err != nil {
		slog.Error("seed restaurant info failed", "error", err)
		os.Exit(1)
	}
	if err := configs.SeedSampleContent(db); err != nil {
		slog.Error("seed sample content failed", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewLocal(cfg.StorageDir, cfg.PublicBaseURL)
	if err != nil {
		slog.Error("init storage failed", "error", err)
		os.Exit(1)
	}

	// Expired sessions are also removed on sight by the guard; the sweep
	// clears rows belonging to tokens that never came back.
	sessions := repository.NewSessionRepository(db)
	go func() {
		for range time.Tick(time.Hour) {
			if err := sessions.DeleteExpired(); err != nil {
				slog.Warn("session sweep failed", "error", err)
			}
		}
	}()

	hub := ws.NewSessionHub()
	go hub.Run()

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Uploaded media resolves through here (the "public URL" of each object).
	r.Static("/storage", cfg.StorageDir)

	routes.RegisterRoutes(r, db, cfg, store, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("server running", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
