package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/riabhaumik/PathwiseAI/internal/assistant"
	"github.com/riabhaumik/PathwiseAI/internal/resource"
	"github.com/riabhaumik/PathwiseAI/internal/server"
)

const app = "pathwise"

type Config struct {
	DataDir   string           `mapstructure:"data-dir"`
	Server    server.Config    `mapstructure:"server"`
	AI        *AIConfig        `mapstructure:"ai"`
	Resources *ResourcesConfig `mapstructure:"resources"`
	Memory    *MemoryConfig    `mapstructure:"memory"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries"`
}

type ResourcesConfig struct {
	Limits             resource.Limits `mapstructure:"limits"`
	YouTubeAPIKeyFile  string          `mapstructure:"youtube-api-key-file"`
	CourseraAPIKeyFile string          `mapstructure:"coursera-api-key-file"`
	EdxAPIKeyFile      string          `mapstructure:"edx-api-key-file"`
	KhanAPIKeyFile     string          `mapstructure:"khan-api-key-file"`
}

type MemoryConfig struct {
	Backend string                 `mapstructure:"backend"`
	TTL     time.Duration          `mapstructure:"ttl"`
	Redis   *assistant.RedisConfig `mapstructure:"redis"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "pathwise is a career guidance service: career catalog, learning roadmaps, resources and an AI advisor",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is pathwise.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	if err := viper.BindEnv("ai.gemini.api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}
}

func initConfig() {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// An explicitly named config must parse; a missing default one is fine,
	// the service runs on defaults.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func setDefaults() {
	viper.SetDefault("data-dir", "data")
	viper.SetDefault("server.addr", ":8000")
	viper.SetDefault("memory.backend", "memory")

	defaults := resource.DefaultLimits()
	viper.SetDefault("resources.limits.max-total", defaults.MaxTotal)
	viper.SetDefault("resources.limits.per-phase", defaults.PerPhase)
	viper.SetDefault("resources.limits.min-total", defaults.MinTotal)
	viper.SetDefault("resources.limits.max-skill-queries", defaults.MaxSkillQueries)
	viper.SetDefault("resources.limits.career-results", defaults.CareerResults)
	viper.SetDefault("resources.limits.skill-results", defaults.SkillResults)
	viper.SetDefault("resources.limits.cache-ttl", defaults.CacheTTL)
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
