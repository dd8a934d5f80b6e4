package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "procurement-scope"
)

type Config struct {
	Project *ProjectConfig `mapstructure:"project"`
	Policy  *PolicyConfig  `mapstructure:"policy"`
	AI      *AIConfig      `mapstructure:"ai"`
	Export  *ExportConfig  `mapstructure:"export"`
}

type ProjectConfig struct {
	Name   string `mapstructure:"name"`
	Prompt string `mapstructure:"prompt"`
}

type PolicyConfig struct {
	UrgencyWindowDays      int      `mapstructure:"urgency-window-days"`
	UrgentLeadTimeCeiling  int      `mapstructure:"urgent-lead-time-ceiling"`
	LeadTimeThreshold      int      `mapstructure:"lead-time-threshold"`
	RedFlagLeadTimeCeiling int      `mapstructure:"red-flag-lead-time-ceiling"`
	MinRelevance           float64  `mapstructure:"min-relevance"`
	PreferredRegions       []string `mapstructure:"preferred-regions"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type ExportConfig struct {
	Dir      string `mapstructure:"dir"`
	BaseName string `mapstructure:"base-name"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "procurement-scope matches requested items to qualified vendors and generates a scope document",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is procurement-scope.yaml in current directory)")
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

	// All rule parameters have defaults, so a missing config file is fine.
	// A config file that exists but does not parse is not.
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

	return config, nil
}
