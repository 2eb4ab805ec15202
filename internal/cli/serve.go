package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shhac/postie/internal/logging"
	"github.com/shhac/postie/internal/web"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen != "" {
				opts.cfg.ListenAddr = listen
			}
			// The server also logs to the console
			opts.logger = logging.Tee(opts.logger, logging.NewConsoleLogger(cmd.ErrOrStderr(), opts.cfg.Debug))

			services, err := opts.services()
			if err != nil {
				return err
			}
			srv, err := web.NewServer(services)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, srv.HTTPServer(opts.cfg.ListenAddr), opts.logger)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default 127.0.0.1:8787)")
	return cmd
}

// serve runs httpServer until ctx is done, then shuts it down.
func serve(ctx context.Context, httpServer *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", httpServer.Addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", httpServer.Addr, err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
