package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fbgraph/fbgraph"
	"github.com/fbgraph/fbgraph/config"
)

var (
	cfgFile     string
	accessToken string
	appSecret   string
	graphURL    string
	verbose     bool

	cfg    *config.Config
	logger zerolog.Logger
	client *fbgraph.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fbgraph",
	Short: "A command-line client for the Facebook Graph API",
	Long: `fbgraph is a CLI for making Facebook Graph API calls: fetching and
posting graph objects, searching, running FQL queries and managing
OAuth access tokens.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&accessToken, "token", "", "access token (overrides config)")
	rootCmd.PersistentFlags().StringVar(&appSecret, "secret", "", "app secret (overrides config)")
	rootCmd.PersistentFlags().StringVar(&graphURL, "graph-url", "", "base Graph API URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration, logger and Graph client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if accessToken != "" {
		cfg.Graph.AccessToken = accessToken
	}
	if appSecret != "" {
		cfg.Graph.AppSecret = appSecret
	}
	if graphURL != "" {
		cfg.Graph.URL = graphURL
	}

	logger = setupLogger(cfg.Logging)

	client = fbgraph.New(
		fbgraph.WithAccessToken(cfg.Graph.AccessToken),
		fbgraph.WithAppSecret(cfg.Graph.AppSecret),
		fbgraph.WithGraphURL(cfg.Graph.URL),
		fbgraph.WithOAuthDialogURL(cfg.Graph.DialogURL),
		fbgraph.WithOAuthDialogURLMobile(cfg.Graph.DialogURLMobile),
		fbgraph.WithLogger(logger),
	)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(lc config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch lc.Level {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(level)

	if lc.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !lc.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// requestContext returns a context bounded by the configured timeout.
func requestContext() (context.Context, context.CancelFunc) {
	if cfg.Graph.Timeout > 0 {
		return context.WithTimeout(context.Background(), cfg.Graph.Timeout)
	}
	return context.WithCancel(context.Background())
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// The root PersistentPreRunE would try to load config; version needs none.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fbgraph %s (built %s)\n", version, buildTime)
	},
}
