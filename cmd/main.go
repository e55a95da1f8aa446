package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/brightpixel/studio-api/internal/api"
	"github.com/brightpixel/studio-api/internal/clients/github"
	"github.com/brightpixel/studio-api/internal/clients/mailer"
	"github.com/brightpixel/studio-api/internal/clients/wave"
	"github.com/brightpixel/studio-api/internal/service"
	"github.com/brightpixel/studio-api/pkg/broker"
	"github.com/brightpixel/studio-api/pkg/config"
	"github.com/brightpixel/studio-api/pkg/logger"
)

const (
	ReadTimeout = 10 * time.Second
	// The invoice workflow makes up to four sequential Wave calls, so the
	// write window has to cover all of them.
	WriteTimeout = 90 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	waveClient := wave.NewClient(cfg.Wave)
	githubClient := github.NewClient(cfg.GitHub)

	var producer service.Producer = broker.NoopProducer{}

	if len(cfg.Kafka.Brokers) != 0 {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.InvoiceEventsTopic)
		defer p.Close()

		producer = p
	}

	var notifier service.Notifier = mailer.Noop{}

	if cfg.Mailer.Host != "" && cfg.Mailer.To != "" {
		notifier = mailer.New(cfg.Mailer)
	}

	s := service.New(cfg, waveClient, githubClient, producer, notifier)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started",
		"port", cfg.HTTP.Port,
		"wave_configured", cfg.Wave.APIKey != "" && cfg.Wave.BusinessID != "",
		"github_configured", cfg.GitHub.Token != "" && cfg.GitHub.Repo != "",
	)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
