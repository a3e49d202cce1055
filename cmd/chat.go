package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/riabhaumik/PathwiseAI/internal/logger"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the career advisor in an interactive session",
	Run: func(_ *cobra.Command, _ []string) {
		chat()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func chat() {
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

	fmt.Println("pathwise career advisor. Type 'exit' to quit.")

	input := promptui.Prompt{Label: "you"}
	conversationID := ""

	for {
		message, err := input.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return
			}
			logger.Fatal("reading input", zap.Error(err))
		}

		message = strings.TrimSpace(message)
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			return
		}

		resp := svc.assistant.Chat(ctx, conversationID, message, nil)
		conversationID = resp.ConversationID

		fmt.Println(resp.Reply)
		if len(resp.FollowUps) > 0 {
			fmt.Println("\nYou could ask:")
			for _, q := range resp.FollowUps {
				fmt.Println("  - " + q)
			}
		}
		fmt.Println()
	}
}
