package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelfscout/appcore/internal/extract"
	"github.com/shelfscout/appcore/internal/hostresolve"
	"github.com/shelfscout/appcore/internal/logger"
	"github.com/shelfscout/appcore/internal/output"
	"github.com/shelfscout/appcore/internal/stores"
	"github.com/shelfscout/appcore/pkg/appconfig"
)

var (
	version = "1.0.0"

	// Global flags
	configFile string
	format     string
	pretty     bool
	verbose    bool
	debug      bool

	// Resolve flags
	platform  string
	devMode   bool
	baseURL   string
	sourceURL string
	apiPort   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shelfscout",
		Short: "ShelfScout app core tooling",
		Long: `ShelfScout app core tooling.

Resolves the API base URL the mobile app will use across development and
production environments, derives the full endpoint URL set, normalizes
retailer names to canonical brands, and dumps the design tokens.`,
		Version: version,
	}

	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the API base URL and endpoint set",
		Long:  "Run the base URL resolution chain (override, dev discovery, loopback fallback) and print the derived endpoint URLs.",
		RunE:  runResolve,
	}

	normalizeCmd := &cobra.Command{
		Use:   "normalize [name...]",
		Short: "Normalize retailer names to canonical brands",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runNormalize,
	}

	extractCmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract store price listings from a saved HTML document",
		Long:  "Parse a saved HTML document (use '-' for stdin) and print its store price listings grouped under canonical brand names.",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}

	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the design tokens",
		RunE:  runTheme,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "Output format (json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug mode")

	// Resolve flags
	resolveCmd.Flags().StringVarP(&platform, "platform", "p", "", "Target platform (android, ios, web)")
	resolveCmd.Flags().BoolVar(&devMode, "dev", false, "Development build (enables bundler host discovery)")
	resolveCmd.Flags().StringVar(&baseURL, "base-url", "", "Explicit base URL override")
	resolveCmd.Flags().StringVar(&sourceURL, "source-url", "", "Bundle source URL to discover the dev host from")
	resolveCmd.Flags().IntVar(&apiPort, "port", 0, "API port for discovered and fallback hosts")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(themeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig builds the effective configuration from the environment,
// an optional config file, and command-line flags (highest priority).
func loadConfig(cmd *cobra.Command) (*appconfig.Config, error) {
	config := appconfig.FromEnv()

	if configFile != "" {
		fileConfig, err := appconfig.LoadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		// Keep the environment override unless the file sets its own.
		if fileConfig.API.BaseURL == "" {
			fileConfig.API.BaseURL = config.API.BaseURL
		}
		config = fileConfig
	}

	if cmd.Flags().Changed("base-url") {
		config.API.BaseURL = baseURL
	}
	if cmd.Flags().Changed("platform") {
		config.API.Platform = hostresolve.ParsePlatform(platform)
	}
	if cmd.Flags().Changed("dev") {
		config.API.DevMode = devMode
	}
	if cmd.Flags().Changed("port") {
		config.API.Port = apiPort
	}
	if format != "" {
		config.Output.Format = format
	}
	config.Output.Pretty = pretty
	config.Verbose = verbose
	config.Debug = debug

	return config, nil
}

func setupLogger(config *appconfig.Config) {
	level := logger.InfoLevel
	if config.Verbose {
		level = logger.DebugLevel
	}
	cfg := logger.DefaultConfig()
	cfg.Level = level
	if config.Debug {
		cfg.Level = logger.DebugLevel
		cfg.Pretty = false
	}
	logger.SetGlobal(logger.New(cfg))
}

func newWriter(config *appconfig.Config) output.Writer {
	return output.NewWriter(os.Stdout, output.Config{
		Format: config.Output.Format,
		Pretty: config.Output.Pretty,
	})
}

func runResolve(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(config)

	opts := []appconfig.Option{appconfig.WithConfig(config)}
	if sourceURL != "" {
		opts = append(opts, appconfig.WithSourceURL(sourceURL))
	}

	app, err := appconfig.New(opts...)
	if err != nil {
		return err
	}

	report := struct {
		BaseURL  string                            `json:"base_url" yaml:"base_url"`
		Platform string                            `json:"platform" yaml:"platform"`
		DevMode  bool                              `json:"dev_mode" yaml:"dev_mode"`
		URLs     map[appconfig.EndpointName]string `json:"urls" yaml:"urls"`
	}{
		BaseURL:  app.BaseURL(),
		Platform: string(config.API.Platform),
		DevMode:  config.API.DevMode,
		URLs:     app.EndpointURLs(),
	}

	return newWriter(config).Write(report)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(config)

	type entry struct {
		Input     string `json:"input" yaml:"input"`
		Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
		Matched   bool   `json:"matched" yaml:"matched"`
	}

	entries := make([]entry, 0, len(args))
	for _, raw := range args {
		canonical, ok := stores.Canonical(raw)
		entries = append(entries, entry{
			Input:     raw,
			Canonical: canonical,
			Matched:   ok,
		})
	}

	return newWriter(config).Write(entries)
}

func runExtract(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(config)

	var reader io.Reader
	if args[0] == "-" {
		reader = os.Stdin
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open document: %w", err)
		}
		defer f.Close()
		reader = f
	}

	result, err := extract.New().Extract(reader)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	return newWriter(config).Write(result)
}

func runTheme(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(config)

	app, err := appconfig.New(appconfig.WithConfig(config))
	if err != nil {
		return err
	}

	return newWriter(config).Write(app.Theme())
}
