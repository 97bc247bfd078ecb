package rottentomatoes

import (
	"context"
)

// API defines the Rotten Tomatoes operations
type API interface {
	// Call requests any endpoint by description
	Call(ctx context.Context, endpoint Endpoint, movieID string, args Args) (any, error)

	MoviesSearch(ctx context.Context, args Args) (any, error)

	// Directories
	ListsDirectory(ctx context.Context) (any, error)
	MovieListsDirectory(ctx context.Context) (any, error)
	DVDListsDirectory(ctx context.Context) (any, error)

	// Movie lists
	BoxOfficeMovies(ctx context.Context, args Args) (any, error)
	InTheaterMovies(ctx context.Context, args Args) (any, error)
	OpeningMovies(ctx context.Context, args Args) (any, error)
	UpcomingMovies(ctx context.Context, args Args) (any, error)

	// DVD lists
	TopRentals(ctx context.Context, args Args) (any, error)
	CurrentDVDReleases(ctx context.Context, args Args) (any, error)
	NewDVDReleases(ctx context.Context, args Args) (any, error)
	UpcomingDVDs(ctx context.Context, args Args) (any, error)

	// Single movie
	MovieInfo(ctx context.Context, movieID string) (any, error)
	MovieCast(ctx context.Context, movieID string) (any, error)
	MovieReviews(ctx context.Context, movieID string, args Args) (any, error)
	SimilarMovies(ctx context.Context, movieID string, args Args) (any, error)
	MovieAlias(ctx context.Context, args Args) (any, error)
}

var _ API = (*Client)(nil)
