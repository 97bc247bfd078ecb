package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tomatoes/rottentomatoes"
)

func newSearchCmd() *cobra.Command {
	ep := rottentomatoes.EndpointMoviesSearch
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search movies by title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := argsFromFlags(cmd, ep.Params)
			if err != nil {
				return err
			}
			params[rottentomatoes.ParamQuery] = strings.Join(args, " ")

			logger.Info().Str("query", params[rottentomatoes.ParamQuery].(string)).Msg("Searching movies")
			return runFetch(cmd, func(ctx context.Context, a rottentomatoes.Args) (any, error) {
				return client.MoviesSearch(ctx, a)
			}, params)
		},
	}
	addParamFlags(cmd, ep.Params)
	return cmd
}

func newListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "lists [movies|dvds]",
		Short:     "Show the lists directory",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"movies", "dvds"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				resp any
				err  error
			)
			ctx := cmd.Context()
			switch {
			case len(args) == 0:
				resp, err = client.ListsDirectory(ctx)
			case args[0] == "movies":
				resp, err = client.MovieListsDirectory(ctx)
			case args[0] == "dvds":
				resp, err = client.DVDListsDirectory(ctx)
			default:
				return fmt.Errorf("unknown directory: %s", args[0])
			}
			if err != nil {
				return err
			}
			return render(resp)
		},
	}
}

// movieList describes a list command backed by one endpoint
type movieList struct {
	use      string
	short    string
	endpoint rottentomatoes.Endpoint
	fetch    func(api rottentomatoes.API) fetchFunc
}

var movieLists = []movieList{
	{
		use:      "box-office",
		short:    "Top box office earning movies",
		endpoint: rottentomatoes.EndpointBoxOfficeMovies,
		fetch:    func(api rottentomatoes.API) fetchFunc { return api.BoxOfficeMovies },
	},
	{
		use:      "in-theaters",
		short:    "Movies currently in theaters",
		endpoint: rottentomatoes.EndpointInTheaterMovies,
		fetch:    func(api rottentomatoes.API) fetchFunc { return api.InTheaterMovies },
	},
	{
		use:      "opening",
		short:    "Movies opening this week",
		endpoint: rottentomatoes.EndpointOpeningMovies,
		fetch:    func(api rottentomatoes.API) fetchFunc { return api.OpeningMovies },
	},
	{
		use:      "upcoming",
		short:    "Upcoming theatrical releases",
		endpoint: rottentomatoes.EndpointUpcomingMovies,
		fetch:    func(api rottentomatoes.API) fetchFunc { return api.UpcomingMovies },
	},
	{
		use:      "top-rentals",
		short:    "Top DVD rentals",
		endpoint: rottentomatoes.EndpointTopRentals,
		fetch:    func(api rottentomatoes.API) fetchFunc { return api.TopRentals },
	},
	{
		use:      "dvd-current",
		short:    "Current DVD releases",
		endpoint: rottentomatoes.EndpointCurrentDVDReleases,
		fetch:    func(api rottentomatoes.API) fetchFunc { return api.CurrentDVDReleases },
	},
	{
		use:      "dvd-new",
		short:    "New DVD releases",
		endpoint: rottentomatoes.EndpointNewDVDReleases,
		fetch:    func(api rottentomatoes.API) fetchFunc { return api.NewDVDReleases },
	},
	{
		use:      "dvd-upcoming",
		short:    "Upcoming DVD releases",
		endpoint: rottentomatoes.EndpointUpcomingDVDs,
		fetch:    func(api rottentomatoes.API) fetchFunc { return api.UpcomingDVDs },
	},
}

func newMovieListCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(movieLists))
	for _, ml := range movieLists {
		cmd := &cobra.Command{
			Use:   ml.use,
			Short: ml.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				params, err := argsFromFlags(cmd, ml.endpoint.Params)
				if err != nil {
					return err
				}
				return runFetch(cmd, ml.fetch(client), params)
			},
		}
		addParamFlags(cmd, ml.endpoint.Params)
		cmds = append(cmds, cmd)
	}
	return cmds
}
