package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/eandb/config"
	"github.com/s0up4200/eandb/eandb"
	"github.com/s0up4200/eandb/filter"
	"github.com/s0up4200/eandb/format"
	"github.com/s0up4200/eandb/transport"
)

var (
	cfgFile       string
	cfg           *config.Config
	logger        zerolog.Logger
	httpTransport *transport.HTTPTransport
	client        *eandb.Client
	filters       *filter.Manager
	formatter     format.Formatter

	// Command flags
	apiVersion   string
	outputFormat string
	language     string
)

// skipInit marks commands that run without configuration
const skipInit = "skip-init"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "eandb",
	Short: "Look up products by barcode on ean-db.com",
	Long: `eandb is a CLI for the ean-db.com barcode database. It looks up EAN, UPC
and ISBN codes and prints product titles, categories, manufacturers and
metadata such as weight, ingredients and nutrition facts.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: shutdownApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiVersion, "api-version", "", "API version to use (v1 or v2)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (console or json)")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "preferred language for titles")
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipInit] == "true" {
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Command line overrides
	version := cfg.APIVersion()
	if cmd.Flags().Changed("api-version") {
		version, err = eandb.ParseVersion(apiVersion)
		if err != nil {
			return err
		}
	}
	output, err := format.ParseOutput(cfg.Output.Format)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		output, err = format.ParseOutput(outputFormat)
		if err != nil {
			return err
		}
	}
	lang := cfg.Output.Language
	if cmd.Flags().Changed("lang") {
		lang = language
	}
	formatter = format.New(output, lang)

	// Create transport and client
	httpTransport, err = transport.New(cfg.TransportConfig(), logger)
	if err != nil {
		return fmt.Errorf("failed to create transport: %w", err)
	}

	client, err = eandb.NewClient(httpTransport, logger,
		eandb.WithVersion(version),
		eandb.WithConcurrency(cfg.Batch.Concurrency),
	)
	if err != nil {
		return fmt.Errorf("failed to create ean-db client: %w", err)
	}

	// Named filters from config
	filters = filter.NewManager(filter.WithEvaluator(filter.NewSequentialEvaluator(logger)))
	if err := filters.RegisterFilters(cfg.Filters); err != nil {
		return fmt.Errorf("invalid filter in config: %w", err)
	}

	logger.Debug().
		Str("version", version.String()).
		Str("output", string(output)).
		Int("filters", len(cfg.Filters)).
		Msg("Initialized")

	return nil
}

// shutdownApp releases the HTTP transport
func shutdownApp(cmd *cobra.Command, args []string) error {
	if httpTransport == nil {
		return nil
	}
	return httpTransport.Close()
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if strings.EqualFold(cfg.Format, "json") {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
