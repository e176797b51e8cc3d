package cmd

import (
	"log"

	"github.com/careertools/skillscan/internal/jsearch"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "skillscan"
)

type Config struct {
	Search     *jsearch.SearchParams `mapstructure:"search"`
	APIKeyFile string                `mapstructure:"api-key-file"`
	Matching   *MatchingConfig       `mapstructure:"matching"`
	Extractor  *ExtractorConfig      `mapstructure:"extractor"`
	Resume     *ResumeConfig         `mapstructure:"resume"`
}

type MatchingConfig struct {
	// FuzzyThreshold is the description-matching threshold in [70,100].
	FuzzyThreshold int `mapstructure:"fuzzy-threshold"`
}

type ExtractorConfig struct {
	Provider            string        `mapstructure:"provider"`
	SimilarityThreshold float64       `mapstructure:"similarity-threshold"`
	Gemini              *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type ResumeConfig struct {
	Name       string `mapstructure:"name"`
	Email      string `mapstructure:"email"`
	Education  string `mapstructure:"education"`
	Experience string `mapstructure:"experience"`
	Skills     string `mapstructure:"skills"`
	Portfolio  string `mapstructure:"portfolio"`
	Photo      string `mapstructure:"photo"`
	Output     string `mapstructure:"output"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "skillscan matches resume skills against live job postings and reports skill gaps",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("api-key-file", "JSEARCH_API_KEY_FILE"); err != nil {
		log.Fatalf("binding JSEARCH_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is skillscan.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
