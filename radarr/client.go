package radarr

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golift.io/starr"
	"golift.io/starr/radarr"
)

// Client wraps the starr Radarr client
type Client struct {
	client RadarrAPI
	logger zerolog.Logger
}

// NewClient creates a new Radarr client and verifies the connection
func NewClient(url, apiKey string, logger zerolog.Logger) (*Client, error) {
	config := starr.New(apiKey, url, 30*time.Second)
	client := NewClientWithAPI(radarr.New(config), logger)

	if err := client.Ping(); err != nil {
		return nil, err
	}

	return client, nil
}

// Ping checks that Radarr is reachable with the configured key
func (c *Client) Ping() error {
	if err := c.client.Ping(); err != nil {
		return fmt.Errorf("failed to connect to Radarr: %w", err)
	}
	return nil
}

// NewClientWithAPI creates a client around an existing API implementation
func NewClientWithAPI(api RadarrAPI, logger zerolog.Logger) *Client {
	return &Client{
		client: api,
		logger: logger,
	}
}

// MovieRef identifies a movie in the Radarr library
type MovieRef struct {
	ID     int64
	Title  string
	Year   int
	IMDBID string
	TMDBID int64
}

// GetMovies retrieves the library sorted by title
func (c *Client) GetMovies(ctx context.Context) ([]MovieRef, error) {
	movies, err := c.client.GetMovieContext(ctx, &radarr.GetMovie{})
	if err != nil {
		return nil, fmt.Errorf("failed to get movies: %w", err)
	}

	refs := make([]MovieRef, 0, len(movies))
	for _, m := range movies {
		if m == nil {
			continue
		}
		refs = append(refs, MovieRef{
			ID:     m.ID,
			Title:  m.Title,
			Year:   m.Year,
			IMDBID: m.ImdbID,
			TMDBID: m.TmdbID,
		})
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Title < refs[j].Title
	})

	c.logger.Debug().Msgf("Retrieved %d movies from Radarr", len(refs))
	return refs, nil
}
