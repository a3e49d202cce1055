package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/riabhaumik/PathwiseAI/internal/assistant"
	"github.com/riabhaumik/PathwiseAI/internal/catalog"
	"github.com/riabhaumik/PathwiseAI/internal/gemini"
	"github.com/riabhaumik/PathwiseAI/internal/logger"
	"github.com/riabhaumik/PathwiseAI/internal/practice"
	"github.com/riabhaumik/PathwiseAI/internal/resource"
	"github.com/riabhaumik/PathwiseAI/internal/resource/providers"
	"github.com/riabhaumik/PathwiseAI/internal/roadmap"
	"github.com/riabhaumik/PathwiseAI/internal/secrets"
)

// services holds the wired subsystems shared by the serve, roadmap and chat
// commands.
type services struct {
	store       *catalog.Store
	synthesizer *roadmap.Synthesizer
	assistant   *assistant.Assistant
	runner      practice.Runner
}

func buildServices(ctx context.Context, config *Config, logger *zap.Logger) (*services, error) {
	store, err := catalog.NewStore(config.DataDir, logger)
	if err != nil {
		return nil, fmt.Errorf("loading catalog from %s: %w", config.DataDir, err)
	}

	aggregator, err := buildAggregator(config.Resources, logger)
	if err != nil {
		return nil, err
	}

	generator, err := buildGenerator(ctx, config.AI, logger)
	if err != nil {
		return nil, err
	}

	// A nil *Generator must stay a nil interface so the synthesizer and
	// assistant take their fallback paths.
	var roadmapGen roadmap.Generator
	var chatGen assistant.Generator
	if generator != nil {
		roadmapGen = generator
		chatGen = generator
	}

	synthesizer := roadmap.NewSynthesizer(store, roadmapGen, aggregator, logger)

	memory, err := buildMemory(ctx, config.Memory)
	if err != nil {
		return nil, err
	}

	tools := assistant.NewTools(store, synthesizer, aggregator, logger)

	return &services{
		store:       store,
		synthesizer: synthesizer,
		assistant:   assistant.New(chatGen, tools, memory, logger),
		runner:      practice.NewSimulatedRunner(logger),
	}, nil
}

// buildAggregator wires the external resource providers. Providers without a
// configured key stay in the list and contribute nothing.
func buildAggregator(config *ResourcesConfig, logger *zap.Logger) (*resource.Aggregator, error) {
	if config == nil {
		config = &ResourcesConfig{Limits: resource.DefaultLimits()}
	}

	keys := []struct {
		name string
		file string
		make func(string) resource.Searcher
	}{
		{"youtube api key", config.YouTubeAPIKeyFile, func(k string) resource.Searcher { return providers.NewYouTube(k) }},
		{"coursera api key", config.CourseraAPIKeyFile, func(k string) resource.Searcher { return providers.NewCoursera(k) }},
		{"edx api key", config.EdxAPIKeyFile, func(k string) resource.Searcher { return providers.NewEdX(k) }},
		{"khan academy api key", config.KhanAPIKeyFile, func(k string) resource.Searcher { return providers.NewKhanAcademy(k) }},
	}

	searchers := make([]resource.Searcher, 0, len(keys))
	for _, entry := range keys {
		key, err := secrets.LoadOptional(secrets.Source{Name: entry.name, File: entry.file})
		if err != nil {
			return nil, err
		}
		searchers = append(searchers, entry.make(key))
	}

	return resource.NewAggregator(searchers, config.Limits, logger), nil
}

func buildGenerator(ctx context.Context, config *AIConfig, base *zap.Logger) (*gemini.Generator, error) {
	if config == nil || !config.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", config.Provider)
	}
	if config.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: config.Gemini.APIKey,
		File:  config.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	genLogger := logger.WithCommonFields(base, "gemini", config.Gemini.Model)

	return gemini.NewGenerator(ctx, apiKey, config.Gemini.Model, config.Gemini.MaxRetries, genLogger)
}

func buildMemory(ctx context.Context, config *MemoryConfig) (assistant.Store, error) {
	if config == nil || config.Backend == "" || config.Backend == "memory" {
		return assistant.NewMemoryStore(), nil
	}

	switch config.Backend {
	case "redis":
		if config.Redis == nil {
			return nil, fmt.Errorf("redis configuration is required for the redis memory backend")
		}
		return assistant.NewRedisStore(ctx, *config.Redis, config.TTL)
	default:
		return nil, fmt.Errorf("unsupported memory backend: %s", config.Backend)
	}
}
