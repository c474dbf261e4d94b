package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-proxy/internal/logging"
	"github.com/pdiddy/pubmed-proxy/internal/server"
	"github.com/pdiddy/pubmed-proxy/internal/tracing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Serve listens on the configured address and answers /, /search,
/abstract/<pubmed_id>, /keywords/<pubmed_id>, and /health. SIGINT or SIGTERM
stops accepting connections and drains in-flight requests.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default 0.0.0.0:5000)")
	_ = viper.BindPFlag("server.address", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := logging.New(os.Stderr, cfg.LogLevel)

	shutdownTracing, err := tracing.Setup(cfg.Tracing.Exporter, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.WithError(err).Warn("flushing traces")
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(newClient(cfg), cfg.Search, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{
		"address":   cfg.Server.Address,
		"eutils":    cfg.EUtils.BaseURL,
		"page_size": cfg.Search.PageSize,
		"api_key":   cfg.EUtils.APIKey != "",
		"tracing":   cfg.Tracing.Exporter,
	}).Info("starting server")

	if err := srv.Run(ctx, cfg.Server); err != nil {
		log.WithError(err).Error("server stopped")
		return err
	}
	log.Info("server stopped")
	return nil
}
