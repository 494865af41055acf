// rosterd ingests member form submissions, normalizes them into canonical
// records, places them in the grouped directory table, and mirrors contacts
// to the external contact store.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"rosterd/internal/affiliation"
	"rosterd/internal/contacts"
	"rosterd/internal/dedupe"
	"rosterd/internal/directory"
	"rosterd/internal/domain"
	"rosterd/internal/events"
	"rosterd/internal/ingest"
	"rosterd/internal/platform/config"
	"rosterd/internal/platform/httpserver"
	"rosterd/internal/platform/logger"
	"rosterd/internal/platform/metrics"
	platformredis "rosterd/internal/platform/redis"
	"rosterd/internal/record"
	httptransport "rosterd/internal/transport/http"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Directory backing store: postgres when configured, in-memory otherwise.
	var table directory.Table
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres connect failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		pg := directory.NewPostgresTable(pool)
		if err := pg.Migrate(ctx); err != nil {
			log.Error("postgres migrate failed", "error", err)
			os.Exit(1)
		}
		table = pg
		log.Info("directory backed by postgres")
	} else {
		table = directory.NewMemoryTable()
		log.Warn("directory backed by memory, rows are lost on restart")
	}

	redisClient, err := platformredis.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("redis connect failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	} else {
		log.Warn("redis not configured, duplicate submissions reprocess")
	}
	guard := dedupe.New(redisClient, cfg.DedupeTTL)

	publisher, err := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
	if err != nil {
		log.Error("kafka connect failed", "error", err)
		os.Exit(1)
	}
	if publisher != nil {
		defer publisher.Close()
	} else {
		log.Warn("kafka not configured, member events disabled")
	}

	var contactClient contacts.Client = contacts.NopClient{}
	if cfg.ContactsBaseURL != "" {
		contactClient = contacts.NewHTTPClient(contacts.Config{
			BaseURL:     cfg.ContactsBaseURL,
			TokenURL:    cfg.ContactsTokenURL,
			ClientEmail: cfg.ContactsClientEmail,
			SigningKey:  cfg.ContactsSigningKey,
		})
	} else {
		log.Warn("contact store not configured, mirroring disabled")
	}

	matcher := affiliation.New(domain.Schools).
		WithScorer(affiliation.FuzzyScorer{MinScore: cfg.MatchMinScore})

	svc := ingest.NewService(ingest.Deps{
		Builder:  record.NewBuilder(matcher),
		Writer:   directory.NewWriter(directory.DefaultValidations()),
		Table:    table,
		Contacts: contactClient,
		Guard:    guard,
		Events:   publisher,
		Logger:   log,
		Metrics:  m,
	})

	handler := httptransport.New(svc, cfg.WebhookSecretHash, log)
	router := httptransport.NewRouter(handler, cfg.AdminToken, log)
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("rosterd listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("rosterd stopped")
}
