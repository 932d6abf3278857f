package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/blog-backend/internal/api"
	"github.com/baharkarakas/blog-backend/internal/auth"
	"github.com/baharkarakas/blog-backend/internal/config"
	"github.com/baharkarakas/blog-backend/internal/db"
	"github.com/baharkarakas/blog-backend/internal/logger"
	"github.com/baharkarakas/blog-backend/internal/mail"
	"github.com/baharkarakas/blog-backend/internal/metrics"
	"github.com/baharkarakas/blog-backend/internal/repository"
	"github.com/baharkarakas/blog-backend/internal/repository/memory"
	mongorepo "github.com/baharkarakas/blog-backend/internal/repository/mongo"
	"github.com/baharkarakas/blog-backend/internal/repository/postgres"
	"github.com/baharkarakas/blog-backend/internal/services"
	"github.com/baharkarakas/blog-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("store connect", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	defer closeStore()

	wp := worker.NewPool(cfg.Workers)
	defer wp.Stop()

	var sender mail.Sender = mail.LogSender{Log: log}
	if cfg.SMTPHost != "" {
		sender = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	}

	userSvc := services.NewUserService(repos.Users, auth.NewHasher(cfg.BcryptCost))
	subSvc := services.NewSubscriptionService(repos.Subscribers, sender, wp, log)
	blogSvc := services.NewBlogService(repos.Blogs, subSvc)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:     cfg,
		Log:     log,
		UserSvc: userSvc,
		BlogSvc: blogSvc,
		SubSvc:  subSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "store", cfg.StoreDriver, "cors_origin", cfg.CORSOrigin)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

// openStore connects the configured backend and returns its repositories
// together with a function releasing the connection.
func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (repository.Repositories, func(), error) {
	switch cfg.StoreDriver {
	case "mongo":
		client, err := db.NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			return repository.Repositories{}, nil, err
		}
		database := client.Database(cfg.MongoDB)
		if err := mongorepo.EnsureIndexes(ctx, database); err != nil {
			_ = client.Disconnect(context.Background())
			return repository.Repositories{}, nil, err
		}
		log.Info("connected to MongoDB", "db", cfg.MongoDB)
		return mongorepo.NewRepositories(database), func() { _ = client.Disconnect(context.Background()) }, nil

	case "postgres":
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return repository.Repositories{}, nil, err
		}
		if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool); err != nil {
				pool.Close()
				return repository.Repositories{}, nil, fmt.Errorf("migrations: %w", err)
			}
		}
		log.Info("connected to PostgreSQL")
		return postgres.NewRepositories(pool), pool.Close, nil

	case "memory":
		log.Warn("using in-memory store, data is lost on restart")
		return memory.NewRepositories(), func() {}, nil
	}
	return repository.Repositories{}, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
}
