package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/s0up4200/tomatoes/config"
	"github.com/s0up4200/tomatoes/filter"
	"github.com/s0up4200/tomatoes/output"
	"github.com/s0up4200/tomatoes/rottentomatoes"
)

var (
	version   = "dev"
	buildTime = "unknown"

	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	client   rottentomatoes.API
	renderer *output.Renderer

	// Command flags
	apiKey     string
	outputFlag string
	filterExpr string
	details    bool
)

// filterCompiler caches compiled --filter expressions
var filterCompiler = filter.NewCompiler(filter.WithCache(filterCacheSize))

const filterCacheSize = 32

// newAPIClient builds the API client once configuration is loaded
var newAPIClient = func(cfg *config.Config, logger zerolog.Logger) rottentomatoes.API {
	return rottentomatoes.NewClient(cfg.RottenTomatoes.APIKey,
		rottentomatoes.WithBaseURL(cfg.RottenTomatoes.BaseURL),
		rottentomatoes.WithTimeout(cfg.RottenTomatoes.Timeout),
		rottentomatoes.WithUserAgent(cfg.RottenTomatoes.UserAgent),
		rottentomatoes.WithLogger(logger),
	)
}

// rootCmd represents the base command
var rootCmd = newRootCmd()

// SetVersion records build information reported by the version command
func SetVersion(v, built string) {
	version = v
	buildTime = built
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tomatoes",
		Short: "Query the Rotten Tomatoes movie API",
		Long: `tomatoes is a CLI for the Rotten Tomatoes v1.0 API. It searches movies,
browses box office, theater and DVD lists, and shows details, cast,
reviews and similar titles for a movie.`,
		PersistentPreRunE: initializeApp,
		SilenceUsage:      true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	root.PersistentFlags().StringVar(&apiKey, "api-key", "", "Rotten Tomatoes API key")
	root.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format (pretty or json)")
	root.PersistentFlags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to movie lists")
	root.PersistentFlags().BoolVar(&details, "details", false, "show movie details in lists")

	root.AddCommand(newSearchCmd())
	root.AddCommand(newListsCmd())
	root.AddCommand(newMovieListCmds()...)
	root.AddCommand(newMovieCmd())
	root.AddCommand(newAliasCmd())
	root.AddCommand(newRadarrCmd())
	root.AddCommand(newEndpointsCmd())
	root.AddCommand(newCallCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	v := viper.New()
	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("rottentomatoes.api_key", flags.Lookup("api-key")); err != nil {
		return err
	}
	if err := v.BindPFlag("output.format", flags.Lookup("output")); err != nil {
		return err
	}

	var err error
	cfg, err = config.LoadWith(v, cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	if flags.Changed("details") {
		cfg.Output.ShowDetails = details
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	renderer = output.NewRenderer(cmd.OutOrStdout(), format, output.FormatOptions{
		ShowDetails: cfg.Output.ShowDetails,
	})

	client = newAPIClient(cfg, logger)
	return nil
}

// skipInit replaces initializeApp for commands that need no configuration
func skipInit(cmd *cobra.Command, args []string) error {
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	fd := os.Stderr.Fd()
	terminal := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !terminal,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// fetchFunc performs one API call
type fetchFunc func(ctx context.Context, args rottentomatoes.Args) (any, error)

// runFetch performs the call and renders the response
func runFetch(cmd *cobra.Command, fetch fetchFunc, args rottentomatoes.Args) error {
	resp, err := fetch(cmd.Context(), args)
	if err != nil {
		return err
	}
	return render(resp)
}

// render applies --filter to movie lists and writes the response
func render(resp any) error {
	if filterExpr != "" {
		if output.Classify(resp) != output.KindMovieList {
			logger.Warn().Str("filter", filterExpr).Msg("Filter ignored: response is not a movie list")
		} else {
			f, err := filterCompiler.Compile(filterExpr)
			if err != nil {
				return fmt.Errorf("invalid filter expression: %w", err)
			}
			movies := output.Records(resp, "movies")
			matched := f.Apply(movies)
			logger.Debug().Int("movies", len(movies)).Int("matched", len(matched)).Msg("Applied filter")
			resp = output.WithRecords(resp, "movies", matched)
		}
	}

	return renderer.Render(resp)
}
