package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"musicapp/internal/config"
	"musicapp/internal/database"
	"musicapp/internal/handlers"
	"musicapp/internal/repository"
	"musicapp/internal/server"
	"musicapp/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := utils.NewLogger(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	repo, closeStore, err := openRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	gin.SetMode(cfg.GinMode)
	router := server.NewRouter(
		handlers.NewMusicHandler(repo, log.Named("handlers")),
		server.CORSPolicy{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: cfg.AllowedMethods,
		},
		log.Named("http"),
	)

	srv := server.New(cfg.Addr(), router, cfg.ReadTimeout, cfg.WriteTimeout, cfg.ShutdownTimeout, log)
	return srv.Run(ctx)
}

func openRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.MusicRepository, func(), error) {
	if cfg.Driver == config.DriverPgx {
		pool, err := database.InitPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		log.Info("store ready", zap.String("driver", cfg.Driver))
		return repository.NewPgxMusicRepository(pool), pool.Close, nil
	}

	db, err := database.InitDB(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	log.Info("store ready", zap.String("driver", cfg.Driver), zap.Bool("auto_migrate", cfg.AutoMigrate))
	closeStore := func() {
		if err := database.CloseDB(db); err != nil {
			log.Warn("close store", zap.Error(err))
		}
	}
	return repository.NewGormMusicRepository(db), closeStore, nil
}
