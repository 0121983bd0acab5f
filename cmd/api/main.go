package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kebele-gov/intake-agent/backend/internal/config"
	"github.com/kebele-gov/intake-agent/backend/internal/handler"
	"github.com/kebele-gov/intake-agent/backend/internal/service/dialogue"
	"github.com/kebele-gov/intake-agent/backend/internal/service/document"
	"github.com/kebele-gov/intake-agent/backend/internal/service/nlu"
	"github.com/kebele-gov/intake-agent/backend/internal/service/upload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	uploads := upload.NewStore(cfg.Storage.UploadDir)
	renderer := document.NewPDFRenderer(cfg.Storage.GeneratedDir)
	sessions := dialogue.NewMemoryStore()

	// Prefer the LLM parser; fall back to the keyword heuristics so the
	// button-driven flow keeps working without credentials.
	var parser nlu.Parser
	if cfg.AI.Enabled() {
		llmParser, err := nlu.NewLLMParser(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize LLM parser: %v", err)
			log.Println("continuing with keyword fallback parser")
			parser = nlu.NewFallbackParser()
		} else {
			log.Println("LLM command parser initialized successfully")
			parser = llmParser
		}
	} else {
		log.Println("Ark credentials not configured, using keyword fallback parser")
		parser = nlu.NewFallbackParser()
	}

	engine := dialogue.New(sessions, parser, renderer, uploads)
	router := handler.NewRouter(engine, cfg.Storage.GeneratedDir)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Kebele intake backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
