package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/riabhaumik/PathwiseAI/internal/logger"
	"github.com/riabhaumik/PathwiseAI/internal/roadmap"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap [career]",
	Short: "Generate a learning roadmap for a career and print it as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		oneShotRoadmap(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(roadmapCmd)

	roadmapCmd.Flags().StringP("level", "l", "beginner", "starting level: beginner, intermediate or advanced")
	roadmapCmd.Flags().StringSlice("completed", nil, "topics already completed, for progress tracking")
}

func oneShotRoadmap(cmd *cobra.Command, career string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	svc, err := buildServices(ctx, config, logger)
	if err != nil {
		logger.Fatal("wiring services", zap.Error(err))
	}

	level, _ := cmd.Flags().GetString("level")
	completed, _ := cmd.Flags().GetStringSlice("completed")

	rm := svc.synthesizer.Generate(ctx, career, roadmap.ParseLevel(level), completed)

	pretty, err := json.MarshalIndent(rm, "", "  ")
	if err != nil {
		logger.Fatal("encoding roadmap", zap.Error(err))
	}
	fmt.Println(string(pretty))
}
