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

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pooja2309/portfolio/internal/config"
	"github.com/pooja2309/portfolio/internal/contact"
	"github.com/pooja2309/portfolio/internal/content"
	"github.com/pooja2309/portfolio/internal/logging"
	"github.com/pooja2309/portfolio/internal/notify"
	"github.com/pooja2309/portfolio/internal/server"
	"github.com/pooja2309/portfolio/internal/store"
)

const shutdownTimeout = 10 * time.Second

var envFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Personal portfolio site with a contact form",
		Long: `portfolio serves the single-page portfolio site and its contact intake
endpoint. Run without arguments to start the server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(newServeCmd(), newContactCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)

	site, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	if n, err := st.CountSubmissions(ctx); err != nil {
		logger.Warn("counting submissions", zap.Error(err))
	} else {
		logger.Info("store ready", zap.Int64("submissions", n))
	}

	var notifier contact.Notifier
	if cfg.SMTP.Enabled() {
		notifier = notify.NewSMTP(cfg.SMTP)
	} else {
		logger.Warn("SMTP credentials not configured, owner notifications disabled")
	}
	if cfg.SaltGenerated {
		logger.Warn("HASH_SALT not set, using a random salt for this process")
	}

	svc := contact.NewService(st, notifier, logger, cfg.HashSalt)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.New(svc, site, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
