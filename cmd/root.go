package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-insight"
)

type Config struct {
	DocumentIntelligence *DocumentIntelligenceConfig `mapstructure:"document-intelligence"`
	AI                   *AIConfig                   `mapstructure:"ai"`
}

type DocumentIntelligenceConfig struct {
	Endpoint            string `mapstructure:"endpoint"`
	KeyFile             string `mapstructure:"key-file"`
	PollIntervalSeconds int    `mapstructure:"poll-interval-seconds"`
	MaxPollAttempts     int    `mapstructure:"max-poll-attempts"`
	DisableStructured   bool   `mapstructure:"disable-structured"`
}

type AIConfig struct {
	Provider    string             `mapstructure:"provider"`
	AzureOpenAI *AzureOpenAIConfig `mapstructure:"azure-openai"`
	Gemini      *GeminiConfig      `mapstructure:"gemini"`
}

type AzureOpenAIConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	KeyFile    string `mapstructure:"key-file"`
	Deployment string `mapstructure:"deployment"`
	APIVersion string `mapstructure:"api-version"`
}

type GeminiConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-insight is a cli for evaluating PDF resumes against a target role",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envBindings := map[string]string{
		"document-intelligence.endpoint": "DI_ENDPOINT",
		"document-intelligence.key-file": "DI_KEY_FILE",
		"ai.azure-openai.endpoint":       "AZURE_OPENAI_ENDPOINT",
		"ai.azure-openai.key-file":       "AZURE_OPENAI_KEY_FILE",
		"ai.azure-openai.deployment":     "AZURE_OPENAI_DEPLOYMENT_NAME",
		"ai.azure-openai.api-version":    "AZURE_OPENAI_API_VERSION",
		"ai.gemini.api-key-file":         "GEMINI_API_KEY_FILE",
	}

	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-insight.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for the analyze command.
	if analyzeCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// Everything can be supplied via environment variables, so a missing
	// config file is fine. A config file parsed with error is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.DocumentIntelligence == nil {
		config.DocumentIntelligence = &DocumentIntelligenceConfig{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}

	return config, nil
}
