package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spigell/resume-insight/internal/ai"
	"github.com/spigell/resume-insight/internal/ai/azopenai"
	"github.com/spigell/resume-insight/internal/ai/gemini"
	"github.com/spigell/resume-insight/internal/docintel"
	"github.com/spigell/resume-insight/internal/document"
	"github.com/spigell/resume-insight/internal/logger"
	"github.com/spigell/resume-insight/internal/pipeline"
	"github.com/spigell/resume-insight/internal/role"
	"github.com/spigell/resume-insight/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.pdf>",
	Short: "Analyze a PDF resume against a target role",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("role", "r", "", "target role to evaluate the resume against")
	analyzeCmd.Flags().StringP("provider", "p", "", "inference provider: azure-openai (default) or gemini")

	viper.BindPFlag("ai.provider", analyzeCmd.Flags().Lookup("provider"))
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command, path string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting resume-insight", zap.String("version", version))

	targetRole, err := resolveTargetRole(cmd)
	if err != nil {
		logger.Fatal("resolving target role", zap.Error(err))
	}

	doc, err := loadDocument(path)
	if err != nil {
		logger.Fatal("loading resume document", zap.Error(err), zap.String("path", path))
	}

	if pages, err := doc.PageCount(); err != nil {
		logger.Debug("local page count unavailable", zap.Error(err))
	} else {
		logger.Info("document loaded", zap.String("filename", doc.Filename), zap.Int("pages", pages))
	}

	extractor, err := newExtractor(config.DocumentIntelligence, logger)
	if err != nil {
		logger.Fatal("building extraction gateway",
			zap.Error(err),
			zap.String("hint", "set DI_ENDPOINT and DI_KEY_FILE or the document-intelligence section in the configuration file"),
		)
	}

	analyzer, err := newAnalyzer(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("building inference provider", zap.Error(err))
	}

	logger.Info("analyzing resume", zap.String("target_role", targetRole))

	record, err := pipeline.New(extractor, analyzer, logger).Analyze(ctx, doc, targetRole)
	if err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}

	printReport(record, targetRole)
}

func resolveTargetRole(cmd *cobra.Command) (string, error) {
	if flag := strings.TrimSpace(cmd.Flag("role").Value.String()); flag != "" {
		return flag, nil
	}

	prompt := promptui.Prompt{
		Label: "Describe the target role (e.g. 'analyze for a Senior Go Developer position')",
	}

	answer, err := prompt.Run()
	if err != nil {
		return "", err
	}

	extracted, ok := role.Extract(answer)
	if !ok {
		return "", fmt.Errorf("could not extract a target role from %q", answer)
	}

	return extracted, nil
}

func loadDocument(path string) (*document.Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// No content-type hint here: the magic-byte and extension checks decide.
	return document.New(data, filepath.Base(path), "")
}

func newExtractor(cfg *DocumentIntelligenceConfig, log *zap.Logger) (*docintel.Client, error) {
	key, err := secrets.Load(secrets.Source{
		Name: "document intelligence key",
		File: cfg.KeyFile,
		Env:  "DI_KEY",
	})
	if err != nil {
		return nil, err
	}

	client := docintel.New(cfg.Endpoint, key, log)

	if cfg.PollIntervalSeconds > 0 {
		client.PollInterval = time.Duration(cfg.PollIntervalSeconds) * time.Second
	}
	if cfg.MaxPollAttempts > 0 {
		client.MaxPollAttempts = cfg.MaxPollAttempts
	}
	client.DisableStructured = cfg.DisableStructured

	return client, nil
}

func newAnalyzer(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Analyzer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))

	switch provider {
	case "", "azure-openai":
		aoai := cfg.AzureOpenAI
		if aoai == nil {
			aoai = &AzureOpenAIConfig{}
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name: "azure openai api key",
			File: aoai.KeyFile,
			Env:  "AZURE_OPENAI_API_KEY",
		})
		if err != nil {
			return nil, err
		}

		deployment := aoai.Deployment
		if deployment == "" {
			deployment = "gpt-4o"
		}

		return azopenai.New(aoai.Endpoint, apiKey, deployment, aoai.APIVersion,
			logger.WithProviderFields(log, "azure-openai", deployment))
	case "gemini":
		gem := cfg.Gemini
		if gem == nil {
			gem = &GeminiConfig{}
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name: "gemini api key",
			File: gem.APIKeyFile,
			Env:  "GEMINI_API_KEY",
		})
		if err != nil {
			return nil, err
		}

		return gemini.New(ctx, apiKey, gem.Model,
			logger.WithProviderFields(log, "gemini", gem.Model))
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}
