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

	"github.com/iwvelando/calckit/internal/config"
	"github.com/iwvelando/calckit/internal/preferences"
	"github.com/iwvelando/calckit/internal/server"
	"github.com/iwvelando/calckit/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(flags *rootFlags) *cobra.Command {
	var serverConfigPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := flags.load()
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			srvConf, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			// The server config may carry its own logging section.
			if srvConf.Logging != (config.LoggingConfig{}) {
				logger, err := initializeLogger(srvConf.Logging, flags.logLevel)
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = logger
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, closeStore, err := openPreferenceStore(ctx, a.conf.Preferences)
			if err != nil {
				return err
			}
			defer closeStore()

			handler := server.NewHandler(a.logger, server.Options{
				Runner:        a.runner,
				Preferences:   preferences.NewService(a.logger, store, nil),
				MaxBodySize:   srvConf.BodySizeBytes(),
				DefaultLocale: a.conf.Locale,
				Version:       version,
			})
			return runServer(ctx, a.logger, srvConf.HTTPServer(handler), srvConf.Timeouts.Shutdown)
		},
	}
	cmd.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	return cmd
}

// openPreferenceStore builds the configured preference backend.
func openPreferenceStore(ctx context.Context, conf config.PreferencesConfig) (preferences.Store, func(), error) {
	if conf.Backend != config.BackendRedis {
		return preferences.NewMemoryStore(), func() {}, nil
	}

	client, err := preferences.DialRedis(ctx, conf.Redis.Address, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return nil, nil, err
	}
	store, err := preferences.NewRedisStore(client, conf.Redis.KeyPrefix, conf.Redis.TTL())
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return store, func() { _ = client.Close() }, nil
}

// runServer serves until ctx is done, then drains in-flight requests.
func runServer(ctx context.Context, logger *zap.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "main.runServer"),
			zap.String("address", srv.Addr),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server", zap.String("op", "main.runServer"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
