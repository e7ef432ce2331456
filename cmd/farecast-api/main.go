// README: Entry point; loads config, wires providers and services, starts HTTP server and sweepers.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"farecast/internal/ai"
	"farecast/internal/config"
	httptransport "farecast/internal/http"
	"farecast/internal/infra"
	"farecast/internal/modules/compare"
	"farecast/internal/modules/distance"
	"farecast/internal/modules/history"
	"farecast/internal/modules/provider"
	"farecast/internal/modules/recommend"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	historyStore := history.NewStore(dbPool)
	if err := historyStore.Init(ctx); err != nil {
		log.Fatalf("history schema init: %v", err)
	}
	historySvc := history.NewService(historyStore)

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	resolver, err := distance.NewResolver(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps client init: %v", err)
	}

	var scorer ai.Scorer
	if cfg.AI.GeminiKey != "" {
		geminiScorer, err := ai.NewGeminiScorer(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer geminiScorer.Close()
		scorer = geminiScorer
	} else {
		log.Print("GEMINI_API_KEY not set, model recommendations fall back to rules")
	}

	seed := cfg.Compare.ProviderSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	providers := []provider.Client{
		provider.NewUber(seed),
		provider.NewOla(seed + 1),
		provider.NewRapido(seed + 2),
		provider.NewWalk(),
		provider.NewMetro(),
	}

	snapshots := compare.NewSnapshotStore(cfg.Compare.SnapshotTTL)
	go snapshots.RunSweeper(ctx, cfg.Compare.SweepInterval)

	compareSvc := compare.NewService(compare.ServiceDeps{
		Distance:  resolver,
		Providers: providers,
		Engine:    recommend.NewEngine(scorer),
		Snapshots: snapshots,
		Cache:     compare.NewRedisCache(redisClient, cfg.Compare.CacheTTL),
		History:   historySvc,
	}, cfg.Compare)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(compareSvc, historySvc),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
