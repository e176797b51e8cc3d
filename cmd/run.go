package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/careertools/skillscan/internal/extract"
	"github.com/careertools/skillscan/internal/extract/gemini"
	"github.com/careertools/skillscan/internal/jsearch"
	"github.com/careertools/skillscan/internal/logger"
	"github.com/careertools/skillscan/internal/matching"
	"github.com/careertools/skillscan/internal/report"
	"github.com/careertools/skillscan/internal/resume"
	"github.com/careertools/skillscan/internal/secrets"
	"github.com/careertools/skillscan/internal/skills"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptExit          = "Exit"
	PromptSaveGapReport = "Save skill gap report"
	PromptDumpMatches   = "Dump matched jobs to file"
	PromptRenderResume  = "Render resume"

	defaultGapReportFile = "skill_gap_report.md"
	defaultResumeOutput  = "resume.html"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptSaveGapReport, PromptDumpMatches, PromptRenderResume, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the skillscan main command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("no-prompt", "y", false, "print the report and exit without the interactive menu")
	runCmd.Flags().StringP("gap-report-file", "g", "", "path for the saved skill gap report. Default is skill_gap_report.md.")

	viper.BindPFlag("gap-report-file", runCmd.Flags().Lookup("gap-report-file"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting skillscan", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Search == nil || strings.TrimSpace(config.Search.Query) == "" {
		logger.Fatal("a search query is required under search.query")
	}

	if level := config.Search.Experience; level != "" && !validExperienceLevel(level) {
		logger.Fatal("unknown experience level",
			zap.String("experience", level),
			zap.Strings("supported", matching.ExperienceLevels()),
		)
	}

	apiKey, err := resolveAPIKey(config)
	if err != nil {
		logger.Fatal(
			"loading jsearch api key",
			zap.Error(err),
			zap.String("hint", "set JSEARCH_API_KEY_FILE environment variable or the 'api-key-file' key in the configuration file"),
		)
	}

	table := skills.Default()

	extractor, err := buildExtractor(ctx, config.Extractor, table, logger)
	if err != nil {
		logger.Fatal("building skill extractor", zap.Error(err))
	}

	text := resumeText(config.Resume)
	if strings.TrimSpace(text) == "" {
		logger.Fatal("resume text is required under the resume section (education, experience or skills)")
	}

	extracted, err := extractor.Extract(ctx, text)
	if err != nil {
		logger.Fatal("extracting skills from resume text", zap.Error(err))
	}

	if len(extracted) == 0 {
		logger.Info("exiting", zap.String("reason", "no known skills found in resume text"))
		return
	}

	logger.Info("extracted skills", zap.Strings("skills", extracted))

	expanded := skills.NewNormalizer(table).Expand(extracted)
	logger.Info("expanded skills through synonyms", zap.Int("count", expanded.Len()))

	logger.Info("starting the search", zap.String("query", config.Search.Query))

	js := jsearch.New(ctx, logger, apiKey)
	pipeline := matching.NewPipeline(js, table, logger)

	outcome := pipeline.Run(config.Search, expanded, matching.Options{
		Experience: config.Search.Experience,
		Threshold:  fuzzyThreshold(config),
	})

	fmt.Println(report.Text(outcome, table))

	if outcome.Failed() {
		logger.Fatal("job search failed", zap.Error(outcome.Err))
	}

	if cmd.Flag("no-prompt").Value.String() == "true" {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, config, outcome, table, extracted); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, config *Config, outcome *matching.Outcome, table *skills.SynonymTable, extracted []string) error {
	switch action {
	case PromptSaveGapReport:
		path := viper.GetString("gap-report-file")
		if path == "" {
			path = defaultGapReportFile
		}
		if err := os.WriteFile(path, []byte(report.GapMarkdown(outcome, table)), 0o644); err != nil {
			return fmt.Errorf("save gap report: %w", err)
		}
		logger.Info("saved skill gap report", zap.String("filename", path))
		return nil
	case PromptDumpMatches:
		filename, err := outcome.Matches.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump matches to file: %w", err)
		}
		logger.Info("dumped matched jobs to file", zap.String("filename", filename))
		return nil
	case PromptRenderResume:
		path, err := renderResume(config.Resume, extracted)
		if err != nil {
			return fmt.Errorf("render resume: %w", err)
		}
		logger.Info("rendered resume", zap.String("filename", path))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func resolveAPIKey(config *Config) (string, error) {
	if config == nil {
		return "", errors.New("config is required")
	}

	keyFile := strings.TrimSpace(config.APIKeyFile)
	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("api-key-file"))
	}

	return secrets.Load(secrets.Source{
		Name: "jsearch api key",
		File: keyFile,
		Env:  "JSEARCH_API_KEY",
	})
}

// buildExtractor selects the configured skill extractor. The lexical one is
// the default and needs no credentials.
func buildExtractor(ctx context.Context, cfg *ExtractorConfig, table *skills.SynonymTable, logger *zap.Logger) (extract.Extractor, error) {
	similarity := 0.0
	provider := ""
	if cfg != nil {
		similarity = cfg.SimilarityThreshold
		provider = strings.TrimSpace(strings.ToLower(cfg.Provider))
	}

	switch provider {
	case "", "lexical":
		return extract.NewLexical(table, similarity, logger), nil
	case "gemini":
		if cfg.Gemini == nil {
			return nil, errors.New("gemini configuration is required when extractor provider is gemini")
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name: "gemini api key",
			File: cfg.Gemini.APIKeyFile,
			Env:  "GEMINI_API_KEY",
		})
		if err != nil {
			return nil, fmt.Errorf("%w (set extractor.gemini.api-key-file or GEMINI_API_KEY)", err)
		}

		genLogger := logger.With(
			zap.String("provider", "gemini"),
			zap.String("model", cfg.Gemini.Model),
			zap.Int("max_retries", cfg.Gemini.MaxRetries),
		)

		generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
		if err != nil {
			return nil, err
		}

		return gemini.NewExtractor(generator, table, similarity, cfg.Gemini.MaxLogLength, genLogger), nil
	default:
		return nil, fmt.Errorf("unsupported extractor provider: %s", provider)
	}
}

// resumeText joins the free-text resume sections for skill extraction, the
// same material the renderer uses.
func resumeText(cfg *ResumeConfig) string {
	if cfg == nil {
		return ""
	}
	return strings.Join([]string{cfg.Education, cfg.Experience, cfg.Skills}, "\n")
}

func renderResume(cfg *ResumeConfig, extracted []string) (string, error) {
	if cfg == nil {
		return "", errors.New("resume section is required to render a resume")
	}

	output := cfg.Output
	if output == "" {
		output = defaultResumeOutput
	}

	data := resume.Data{
		Name:         cfg.Name,
		Email:        cfg.Email,
		Education:    cfg.Education,
		Experience:   cfg.Experience,
		Skills:       extracted,
		PortfolioURL: cfg.Portfolio,
		PhotoFile:    cfg.Photo,
	}

	if err := resume.RenderToFile(output, data); err != nil {
		return "", err
	}
	return output, nil
}

func fuzzyThreshold(config *Config) int {
	if config.Matching == nil {
		return 0
	}
	return config.Matching.FuzzyThreshold
}

func validExperienceLevel(level string) bool {
	for _, known := range matching.ExperienceLevels() {
		if level == known {
			return true
		}
	}
	return false
}
