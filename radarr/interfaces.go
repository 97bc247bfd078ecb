package radarr

import (
	"context"

	"golift.io/starr/radarr"

	"github.com/s0up4200/tomatoes/rottentomatoes"
)

// RadarrAPI defines the Radarr operations the reader needs
type RadarrAPI interface {
	GetMovieContext(ctx context.Context, params *radarr.GetMovie) ([]*radarr.Movie, error)

	// Health check
	Ping() error
}

// AliasLookup resolves external identifiers to Rotten Tomatoes movies
type AliasLookup interface {
	MovieAlias(ctx context.Context, args rottentomatoes.Args) (any, error)
}
