package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"quiz-cli/internal/app"
	"quiz-cli/internal/config"
	"quiz-cli/internal/infra/file"
	"quiz-cli/internal/infra/memory"
	pgrecords "quiz-cli/internal/infra/postgres"
	redisrecords "quiz-cli/internal/infra/redis"
	"quiz-cli/internal/records"
)

// session is everything one invocation needs; close releases it.
type session struct {
	service *app.QuizService
	close   func()
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel()}))
}

// openSession selects the record backend, loads the store and builds the service.
// With skipLoad the service starts on an empty store, so records that no longer
// decode can still be cleared.
func openSession(ctx context.Context, cfg config.Config, logger *slog.Logger, skipLoad bool) (*session, error) {
	backend, closeBackend, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	store := memory.NewStore()
	if !skipLoad {
		store, err = records.Load(ctx, backend)
		if err != nil {
			closeBackend()
			return nil, fmt.Errorf("load records: %w", err)
		}
		logger.Debug("records loaded",
			"users", len(store.Users()),
			"questions", len(store.Questions()),
			"quizzes", len(store.Quizzes()),
		)
	}

	return &session{
		service: app.NewQuizService(store, backend, logger),
		close:   closeBackend,
	}, nil
}

func openBackend(ctx context.Context, cfg config.Config, logger *slog.Logger) (records.Backend, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		store, err := file.NewRecordStore(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("using file records", "dir", cfg.Storage.Dir)
		return store, func() {}, nil

	case config.DriverRedis:
		if cfg.Redis.Addr == "" {
			return nil, nil, fmt.Errorf("redis addr not configured")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		lock := redisrecords.NewLock(client, config.TTLDuration(cfg.Redis.LockTTL, 30*time.Second))
		if err := lock.Acquire(ctx); err != nil {
			client.Close()
			return nil, nil, err
		}
		logger.Debug("records lock acquired, using redis records", "addr", cfg.Redis.Addr)
		return redisrecords.NewRecordStore(client), func() {
			if err := lock.Release(context.Background()); err != nil {
				logger.Warn("release lock", "err", err)
			}
			client.Close()
		}, nil

	case config.DriverPostgres:
		if err := runMigrationsWithConfig(ctx, cfg, logger); err != nil {
			return nil, nil, err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("using postgres records")
		return pgrecords.NewRecordStore(pool), pool.Close, nil
	}
	return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
}
