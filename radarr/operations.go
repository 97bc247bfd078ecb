package radarr

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/tomatoes/rottentomatoes"
)

// ScoredMovie pairs a library movie with its Rotten Tomatoes entry
type ScoredMovie struct {
	Movie          MovieRef
	Found          bool
	RottenID       string
	CriticsScore   float64
	CriticsRating  string
	AudienceScore  float64
	AudienceRating string
	Err            error
}

// Operations cross-references the Radarr library with Rotten Tomatoes
type Operations struct {
	client *Client
	lookup AliasLookup
	logger zerolog.Logger
}

// NewOperations creates a new Operations instance
func NewOperations(client *Client, lookup AliasLookup, logger zerolog.Logger) *Operations {
	return &Operations{
		client: client,
		lookup: lookup,
		logger: logger,
	}
}

// ScoreLibrary looks up every library movie with an IMDb ID, one request at
// a time. limit caps the number of lookups; zero means no cap. Lookup
// failures are recorded on the movie and do not stop the scan.
func (o *Operations) ScoreLibrary(ctx context.Context, limit int) ([]ScoredMovie, error) {
	movies, err := o.client.GetMovies(ctx)
	if err != nil {
		return nil, err
	}

	var results []ScoredMovie
	for _, movie := range movies {
		if movie.IMDBID == "" {
			o.logger.Debug().Str("movie", movie.Title).Msg("Skipping movie without IMDb ID")
			continue
		}
		if limit > 0 && len(results) >= limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		results = append(results, o.scoreMovie(ctx, movie))
	}

	o.logger.Info().Int("looked_up", len(results)).Int("library", len(movies)).Msg("Scored Radarr library")
	return results, nil
}

func (o *Operations) scoreMovie(ctx context.Context, movie MovieRef) ScoredMovie {
	scored := ScoredMovie{Movie: movie}

	resp, err := o.lookup.MovieAlias(ctx, rottentomatoes.Args{
		rottentomatoes.ParamType: "imdb",
		rottentomatoes.ParamID:   strings.TrimPrefix(movie.IMDBID, "tt"),
	})
	if err != nil {
		o.logger.Warn().Err(err).Str("movie", movie.Title).Msg("Alias lookup failed")
		scored.Err = err
		return scored
	}

	body, ok := resp.(map[string]any)
	if !ok {
		return scored
	}

	id, found := body["id"]
	if !found {
		if msg, ok := body["error"].(string); ok {
			o.logger.Debug().Str("movie", movie.Title).Str("error", msg).Msg("Movie not found on Rotten Tomatoes")
		}
		return scored
	}

	scored.Found = true
	scored.RottenID = idString(id)
	if ratings, ok := body["ratings"].(map[string]any); ok {
		scored.CriticsScore = number(ratings["critics_score"], -1)
		scored.AudienceScore = number(ratings["audience_score"], -1)
		scored.CriticsRating, _ = ratings["critics_rating"].(string)
		scored.AudienceRating, _ = ratings["audience_rating"].(string)
	} else {
		scored.CriticsScore = -1
		scored.AudienceScore = -1
	}

	return scored
}

// idString renders an id that the API may return as a number or a string
func idString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

func number(v any, fallback float64) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return fallback
}
