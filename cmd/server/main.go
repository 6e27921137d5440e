package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"habitbloom/internal/api"
	"habitbloom/internal/config"
	"habitbloom/internal/db"
	"habitbloom/internal/profile"
	redisdb "habitbloom/internal/redis"
	"habitbloom/internal/reflection"
)

func main() {
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := db.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	rdb := redisdb.NewClient(cfg)

	store := profile.NewStore(db.DB)
	mgr := profile.NewManager(store, time.Now)

	gemini := reflection.NewGeminiClient(cfg.Gemini)
	limiter := reflection.NewRateLimiter(
		cfg.Reflect.MaxRequests,
		time.Duration(cfg.Reflect.WindowSeconds)*time.Second,
		nil,
	)
	refl := reflection.NewService(gemini, limiter, time.Duration(cfg.Gemini.RetryDelayMs)*time.Millisecond)
	log.Printf("[Main] reflection service ready (model %s, %d req / %ds per client)",
		cfg.Gemini.Model, cfg.Reflect.MaxRequests, cfg.Reflect.WindowSeconds)

	r := api.SetupRouter(cfg, rdb, mgr, store, refl)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Starting server on %s%s\n", addr, cfg.Server.Subpath)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
