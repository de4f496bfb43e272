package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/symptriage/internal/logging"
	"github.com/ppiankov/symptriage/internal/model"
	"github.com/ppiankov/symptriage/internal/pipeline"
	"github.com/ppiankov/symptriage/internal/taxonomy"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	cfgFile      string
	verbose      bool
	logLevel     string
	logFormat    string
	outputFormat string
	enrichPath   string
	noEnrichment bool

	v         *viper.Viper
	configErr error

	appCfg *model.Config
	logger *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "symptriage",
	Short: "Symptriage - symptom urgency screening (not a diagnosis)",
	Long: `Symptriage classifies a described set of symptoms into a coarse urgency
tier (Low, Low-Medium, Medium, High) and returns fixed guidance for that tier.

It does not diagnose anything. It matches known phrases in your description
and tells you how soon to seek care. Always consult a qualified healthcare
professional; in an emergency, call emergency services immediately.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "symptriage %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.symptriage/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (text, json)")
	flags.StringVarP(&outputFormat, "format", "o", "", "output format (text, json, markdown)")
	flags.StringVar(&enrichPath, "enrichment", "", "enrichment document (JSON or YAML) extending the medium-risk phrases")
	flags.BoolVar(&noEnrichment, "no-enrichment", false, "use only the built-in taxonomy")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	v = viper.New()
	configErr = nil
	setDefaults(v, model.DefaultConfig())

	// Bind flags to viper
	flags := rootCmd.PersistentFlags()
	_ = v.BindPFlag("output.verbose", flags.Lookup("verbose"))
	_ = v.BindPFlag("output.format", flags.Lookup("format"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = v.BindPFlag("taxonomy.enrichment_path", flags.Lookup("enrichment"))

	if cfgFile != "" {
		// Use config file from the flag
		v.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".symptriage"))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	// Read in environment variables that match SYMPTRIAGE_*
	v.SetEnvPrefix("SYMPTRIAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("read config: %w", err)
		}
	}
}

// setDefaults registers every key so env overrides apply to nested settings
func setDefaults(v *viper.Viper, d *model.Config) {
	v.SetDefault("taxonomy.enrichment", d.Taxonomy.Enrichment)
	v.SetDefault("taxonomy.enrichment_path", d.Taxonomy.EnrichmentPath)
	v.SetDefault("taxonomy.enrichment_limit", d.Taxonomy.EnrichmentLimit)

	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.cleanup_interval", d.Cache.CleanupInterval)

	v.SetDefault("concurrency.workers", d.Concurrency.Workers)

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)

	v.SetDefault("rate_limiting.requests_per_second", d.RateLimiting.RequestsPerSecond)
	v.SetDefault("rate_limiting.burst_size", d.RateLimiting.BurstSize)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.include_footer", d.Output.IncludeFooter)
	v.SetDefault("output.verbose", d.Output.Verbose)
}

// loadConfig resolves flags > env > file > defaults into a Config
func loadConfig() (*model.Config, error) {
	if configErr != nil {
		return nil, configErr
	}

	cfg := model.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if noEnrichment {
		cfg.Taxonomy.Enrichment = false
	}
	if cfg.Concurrency.Workers <= 0 {
		cfg.Concurrency.Workers = 1
	}
	return cfg, nil
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger = logging.Init(cfg.Log)
	if cfg.Output.Verbose && v.ConfigFileUsed() != "" {
		logger.Info("using config file", "path", v.ConfigFileUsed())
	}

	appCfg = cfg
	return nil
}

// newPipeline builds the taxonomy (falling back to the built-in one) and the pipeline
func newPipeline() *pipeline.Pipeline {
	path := ""
	if appCfg.Taxonomy.Enrichment {
		path = appCfg.Taxonomy.EnrichmentPath
	}
	loader := taxonomy.NewLoader(path, appCfg.Taxonomy.EnrichmentLimit, logger)
	return pipeline.NewPipeline(appCfg, loader.Taxonomy(), logger)
}
