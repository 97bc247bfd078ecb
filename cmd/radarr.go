package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tomatoes/filter"
	"github.com/s0up4200/tomatoes/output"
	"github.com/s0up4200/tomatoes/radarr"
)

// newRadarrClient connects to Radarr once configuration is loaded
var newRadarrClient = func(url, apiKey string, logger zerolog.Logger) (*radarr.Client, error) {
	return radarr.NewClient(url, apiKey, logger)
}

func newRadarrCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "radarr",
		Short: "Show Rotten Tomatoes scores for movies in Radarr",
		Long: `Look up every movie in your Radarr library by its IMDb ID and show
critics and audience scores. Lookups run one at a time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cfg.Radarr.Enabled() {
				return fmt.Errorf("radarr configuration missing. Please set radarr.url and radarr.api_key in config")
			}

			radarrClient, err := newRadarrClient(cfg.Radarr.URL, cfg.Radarr.APIKey, logger)
			if err != nil {
				return fmt.Errorf("failed to create Radarr client: %w", err)
			}

			logger.Info().Str("url", cfg.Radarr.URL).Int("limit", limit).Msg("Scoring Radarr library...")

			ops := radarr.NewOperations(radarrClient, client, logger)
			results, err := ops.ScoreLibrary(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to score library: %w", err)
			}

			if filterExpr != "" {
				f, err := filterCompiler.Compile(filterExpr)
				if err != nil {
					return fmt.Errorf("invalid filter expression: %w", err)
				}
				results = filterScores(f, results)
			}

			if renderer.Format() == output.FormatJSON {
				return renderer.JSON(scoresJSON(results))
			}
			return renderer.Text(output.NewConsoleFormatter().FormatScores(results))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of movies to look up (0 for all)")
	return cmd
}

// filterScores keeps the results whose flattened record matches f
func filterScores(f *filter.Filter, results []radarr.ScoredMovie) []radarr.ScoredMovie {
	matched := make([]radarr.ScoredMovie, 0, len(results))
	for _, r := range results {
		if f.Match(scoreRecord(r)) {
			matched = append(matched, r)
		}
	}
	logger.Debug().Int("movies", len(results)).Int("matched", len(matched)).Msg("Applied filter")
	return matched
}

// scoresJSON flattens results for JSON output
func scoresJSON(results []radarr.ScoredMovie) []map[string]any {
	out := make([]map[string]any, 0, len(results))
	for _, r := range results {
		out = append(out, scoreRecord(r))
	}
	return out
}

func scoreRecord(r radarr.ScoredMovie) map[string]any {
	entry := map[string]any{
		"title":   r.Movie.Title,
		"year":    r.Movie.Year,
		"imdb_id": r.Movie.IMDBID,
		"found":   r.Found,
	}
	if r.Found {
		entry["id"] = r.RottenID
		entry["critics_score"] = r.CriticsScore
		entry["critics_rating"] = r.CriticsRating
		entry["audience_score"] = r.AudienceScore
		entry["audience_rating"] = r.AudienceRating
	}
	if r.Err != nil {
		entry["error"] = r.Err.Error()
	}
	return entry
}
