package rottentomatoes

import (
	"context"
	"strings"
)

// movieIDPlaceholder marks where the movie identifier goes in an endpoint path
const movieIDPlaceholder = "{id}"

// Endpoint describes one API resource: its path relative to the base URL
// and the optional parameters it accepts.
type Endpoint struct {
	Name   string
	Path   string
	Params []Param
}

// NeedsMovieID reports whether the path contains a movie identifier segment
func (e Endpoint) NeedsMovieID() bool {
	return strings.Contains(e.Path, movieIDPlaceholder)
}

// resolve interpolates the movie identifier as given
func (e Endpoint) resolve(movieID string) string {
	return strings.ReplaceAll(e.Path, movieIDPlaceholder, movieID)
}

var (
	pagedCountry = []Param{ParamPageLimit, ParamPage, ParamCountry}
	limitCountry = []Param{ParamLimit, ParamCountry}
)

// Endpoints of the v1.0 API
var (
	EndpointMoviesSearch        = Endpoint{Name: "movies_search", Path: "movies.json", Params: []Param{ParamQuery, ParamPageLimit, ParamPage}}
	EndpointListsDirectory      = Endpoint{Name: "lists_directory", Path: "lists.json"}
	EndpointMovieListsDirectory = Endpoint{Name: "movie_lists_directory", Path: "lists/movies.json"}
	EndpointDVDListsDirectory   = Endpoint{Name: "dvd_lists_directory", Path: "lists/dvds.json"}
	EndpointBoxOfficeMovies     = Endpoint{Name: "box_office_movies", Path: "lists/movies/box_office.json", Params: limitCountry}
	EndpointInTheaterMovies     = Endpoint{Name: "in_theater_movies", Path: "lists/movies/in_theaters.json", Params: pagedCountry}
	EndpointOpeningMovies       = Endpoint{Name: "opening_movies", Path: "lists/movies/opening.json", Params: limitCountry}
	EndpointUpcomingMovies      = Endpoint{Name: "upcoming_movies", Path: "lists/movies/upcoming.json", Params: pagedCountry}
	EndpointTopRentals          = Endpoint{Name: "top_rentals", Path: "lists/dvds/top_rentals.json", Params: limitCountry}
	EndpointCurrentDVDReleases  = Endpoint{Name: "current_dvd_releases", Path: "lists/dvds/current_releases.json", Params: pagedCountry}
	EndpointNewDVDReleases      = Endpoint{Name: "new_dvd_releases", Path: "lists/dvds/new_releases.json", Params: pagedCountry}
	EndpointUpcomingDVDs        = Endpoint{Name: "upcoming_dvds", Path: "lists/dvds/upcoming.json", Params: pagedCountry}
	EndpointMovieInfo           = Endpoint{Name: "movie_info", Path: "movies/{id}.json"}
	EndpointMovieCast           = Endpoint{Name: "movie_cast", Path: "movies/{id}/cast.json"}
	EndpointMovieReviews        = Endpoint{Name: "movie_reviews", Path: "movies/{id}/reviews.json", Params: []Param{ParamReviewType, ParamPageLimit, ParamPage, ParamCountry}}
	EndpointSimilarMovies       = Endpoint{Name: "similar_movies", Path: "movies/{id}/similar.json", Params: []Param{ParamLimit}}
	EndpointMovieAlias          = Endpoint{Name: "movie_alias", Path: "movie_alias.json", Params: []Param{ParamType, ParamID}}
)

// Endpoints returns every endpoint in a stable order
func Endpoints() []Endpoint {
	return []Endpoint{
		EndpointMoviesSearch,
		EndpointListsDirectory,
		EndpointMovieListsDirectory,
		EndpointDVDListsDirectory,
		EndpointBoxOfficeMovies,
		EndpointInTheaterMovies,
		EndpointOpeningMovies,
		EndpointUpcomingMovies,
		EndpointTopRentals,
		EndpointCurrentDVDReleases,
		EndpointNewDVDReleases,
		EndpointUpcomingDVDs,
		EndpointMovieInfo,
		EndpointMovieCast,
		EndpointMovieReviews,
		EndpointSimilarMovies,
		EndpointMovieAlias,
	}
}

// EndpointByName looks up an endpoint by its Name
func EndpointByName(name string) (Endpoint, bool) {
	for _, e := range Endpoints() {
		if e.Name == name {
			return e, true
		}
	}
	return Endpoint{}, false
}

// Call requests an arbitrary endpoint. movieID is ignored by endpoints
// without an identifier segment.
func (c *Client) Call(ctx context.Context, endpoint Endpoint, movieID string, args Args) (any, error) {
	return c.request(ctx, endpoint.resolve(movieID), args, endpoint.Params)
}

// MoviesSearch searches movies by title (q, page_limit, page)
func (c *Client) MoviesSearch(ctx context.Context, args Args) (any, error) {
	return c.Call(ctx, EndpointMoviesSearch, "", args)
}

// ListsDirectory returns the top level lists directory
func (c *Client) ListsDirectory(ctx context.Context) (any, error) {
	return c.Call(ctx, EndpointListsDirectory, "", nil)
}

// MovieListsDirectory returns the movie lists directory
func (c *Client) MovieListsDirectory(ctx context.Context) (any, error) {
	return c.Call(ctx, EndpointMovieListsDirectory, "", nil)
}

// DVDListsDirectory returns the DVD lists directory
func (c *Client) DVDListsDirectory(ctx context.Context) (any, error) {
	return c.Call(ctx, EndpointDVDListsDirectory, "", nil)
}

// BoxOfficeMovies lists the current box office (limit, country)
func (c *Client) BoxOfficeMovies(ctx context.Context, args Args) (any, error) {
	return c.Call(ctx, EndpointBoxOfficeMovies, "", args)
}

// InTheaterMovies lists movies in theaters (page_limit, page, country)
func (c *Client) InTheaterMovies(ctx context.Context, args Args) (any, error) {
	return c.Call(ctx, EndpointInTheaterMovies, "", args)
}

// OpeningMovies lists movies opening this week (limit, country)
func (c *Client) OpeningMovies(ctx context.Context, args Args) (any, error) {
	return c.Call(ctx, EndpointOpeningMovies, "", args)
}

// UpcomingMovies lists upcoming theatrical releases (page_limit, page, country)
func (c *Client) UpcomingMovies(ctx context.Context, args Args) (any, error) {
	return c.Call(ctx, EndpointUpcomingMovies, "", args)
}

// TopRentals lists top DVD rentals (limit, country)
func (c *Client) TopRentals(ctx context.Context, args Args) (any, error) {
	return c.Call(ctx, EndpointTopRentals, "", args)
}

// CurrentDVDReleases lists current DVD releases (page_limit, page, country)
func (c *Client) CurrentDVDReleases(ctx context.Context, args Args) (any, error) {
	return c.Call(ctx, EndpointCurrentDVDReleases, "", args)
}

// NewDVDReleases lists new DVD releases (page_limit, page, country)
func (c *Client) NewDVDReleases(ctx context.Context, args Args) (any, error) {
	return c.Call(ctx, EndpointNewDVDReleases, "", args)
}

// UpcomingDVDs lists upcoming DVD releases (page_limit, page, country)
func (c *Client) UpcomingDVDs(ctx context.Context, args Args) (any, error) {
	return c.Call(ctx, EndpointUpcomingDVDs, "", args)
}

// MovieInfo returns detailed information for a movie
func (c *Client) MovieInfo(ctx context.Context, movieID string) (any, error) {
	return c.Call(ctx, EndpointMovieInfo, movieID, nil)
}

// MovieCast returns the abridged cast of a movie
func (c *Client) MovieCast(ctx context.Context, movieID string) (any, error) {
	return c.Call(ctx, EndpointMovieCast, movieID, nil)
}

// MovieReviews returns reviews of a movie (review_type, page_limit, page, country)
func (c *Client) MovieReviews(ctx context.Context, movieID string, args Args) (any, error) {
	return c.Call(ctx, EndpointMovieReviews, movieID, args)
}

// SimilarMovies returns movies similar to the given one (limit)
func (c *Client) SimilarMovies(ctx context.Context, movieID string, args Args) (any, error) {
	return c.Call(ctx, EndpointSimilarMovies, movieID, args)
}

// MovieAlias looks a movie up by an external identifier (type, id)
func (c *Client) MovieAlias(ctx context.Context, args Args) (any, error) {
	return c.Call(ctx, EndpointMovieAlias, "", args)
}
