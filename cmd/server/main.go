package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	router "github.com/dkeye/Chat/internal/adapters/http"
	"github.com/dkeye/Chat/internal/adapters/redis"
	"github.com/dkeye/Chat/internal/adapters/sqlite"
	"github.com/dkeye/Chat/internal/app"
	"github.com/dkeye/Chat/internal/app/orch"
	"github.com/dkeye/Chat/internal/app/store"
	"github.com/dkeye/Chat/internal/config"
	"github.com/dkeye/Chat/internal/core"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogger(cfg)

	stores, closeStores := buildStores(ctx, cfg)
	defer closeStores()

	policy, err := app.NewPolicy(cfg.Backpressure)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid backpressure policy")
	}

	reg := app.NewRegistry(stores.rooms, stores.users)
	o := &orch.Orchestrator{
		Registry:     reg,
		Rooms:        stores.rooms,
		Messages:     stores.messages,
		Policy:       policy,
		HistoryLimit: cfg.HistoryLimit,
	}

	r := router.SetupRouter(ctx, cfg, o)
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("Chat server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server error")
		return
	}
	log.Info().Msg("Server exited gracefully")
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Mode == "release" {
		// JSON lines for log shippers.
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

type stores struct {
	rooms    core.RoomStore
	messages core.MessageStore
	users    core.UserStateStore
}

// buildStores puts sqlite and redis in front of the memory stores when
// configured. A backend that cannot be opened leaves its store in memory.
func buildStores(ctx context.Context, cfg *config.Config) (stores, func()) {
	var (
		roomBackend core.RoomBackend
		msgBackend  core.MessageBackend
		userBackend core.UserStateStore
		closers     []func()
	)

	if path := cfg.Storage.SQLitePath; path != "" {
		db, err := sqlite.Open(path)
		if err != nil {
			log.Error().Err(err).Str("module", "main").Msg("sqlite unavailable, rooms and messages stay in memory")
		} else {
			roomBackend = sqlite.NewRoomRepository(db)
			msgBackend = sqlite.NewMessageRepository(db)
			if sqlDB, err := db.DB(); err == nil {
				closers = append(closers, func() { _ = sqlDB.Close() })
			}
		}
	}

	if addr := cfg.Storage.RedisAddr; addr != "" {
		client, err := redis.Dial(ctx, addr, cfg.Storage.RedisTimeout)
		if err != nil {
			log.Warn().Err(err).Str("module", "main").Msg("redis not answering yet, user state falls back to memory")
		}
		userBackend = redis.NewUserStateStore(client, cfg.Storage.RedisPrefix, cfg.Storage.UserStateTTL)
		closers = append(closers, func() { _ = client.Close() })
	}

	s := stores{
		rooms:    store.NewRooms(roomBackend, store.NewMemoryRooms(), store.NewPasswordHasher(bcrypt.DefaultCost)),
		messages: store.NewMessages(msgBackend, store.NewMemoryMessages(cfg.MemoryLogCap)),
		users:    store.NewUserState(userBackend, store.NewMemoryUserState()),
	}
	return s, func() {
		for _, c := range closers {
			c()
		}
	}
}
