package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/riabhaumik/PathwiseAI/internal/logger"
	"github.com/riabhaumik/PathwiseAI/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pathwise HTTP API server",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (overrides server.addr)")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting pathwise", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	svc, err := buildServices(ctx, config, logger)
	if err != nil {
		logger.Fatal("wiring services", zap.Error(err))
	}

	// Catalog files are hot-reloaded for the lifetime of the server.
	go func() {
		if err := svc.store.Watch(ctx); err != nil {
			logger.Warn("catalog watcher stopped", zap.Error(err))
		}
	}()

	srv := server.New(config.Server, server.Deps{
		Store:       svc.store,
		Synthesizer: svc.synthesizer,
		Assistant:   svc.assistant,
		Runner:      svc.runner,
		Logger:      logger,
	})

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}

	logger.Info("server stopped")
}
