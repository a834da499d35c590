package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"slipfall-engine/internal/config"
	"slipfall-engine/internal/handler"
)

var (
	servePort   int
	serveStrict bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the calculation API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sc := cfg.Server
		if servePort != 0 {
			sc.Port = servePort
		}
		strict := cfg.Engine.Strict
		if cmd.Flags().Changed("strict") {
			strict = serveStrict
		}

		check := *cfg
		check.Server = sc
		if err := check.Validate(); err != nil {
			return err
		}

		return runServer(ctx, sc, strict)
	},
}

func newServer(sc config.ServerConfig, strict bool) *fasthttp.Server {
	h := handler.New(handler.Config{
		Strict:    strict,
		RateLimit: sc.RateLimit,
		RateBurst: sc.RateBurst,
	})

	return &fasthttp.Server{
		Handler:            h.Serve,
		Name:               sc.Name,
		ReadTimeout:        time.Duration(sc.ReadTimeoutSecs) * time.Second,
		WriteTimeout:       time.Duration(sc.WriteTimeoutSecs) * time.Second,
		MaxRequestBodySize: sc.MaxBodyBytes,
	}
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, sc config.ServerConfig, strict bool) error {
	srv := newServer(sc, strict)
	addr := fmt.Sprintf(":%d", sc.Port)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zap.L().Info("starting server",
			zap.String("addr", addr),
			zap.Bool("strict", strict),
			zap.Float64("rate_limit", sc.RateLimit),
		)
		if err := srv.ListenAndServe(addr); err != nil {
			return eris.Wrap(err, "server listen")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.ShutdownWithContext(shutdownCtx)
	})

	return g.Wait()
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	serveCmd.Flags().BoolVar(&serveStrict, "strict", false, "reject invalid inputs by default (default from config)")
	rootCmd.AddCommand(serveCmd)
}
