package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tomatoes/rottentomatoes"
)

func newMovieCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movie",
		Short: "Look up a single movie by Rotten Tomatoes ID",
	}

	info := &cobra.Command{
		Use:   "info ID",
		Short: "Detailed information for a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.MovieInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render(resp)
		},
	}

	cast := &cobra.Command{
		Use:   "cast ID",
		Short: "Cast of a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.MovieCast(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render(resp)
		},
	}

	reviews := &cobra.Command{
		Use:   "reviews ID",
		Short: "Critic reviews of a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := argsFromFlags(cmd, rottentomatoes.EndpointMovieReviews.Params)
			if err != nil {
				return err
			}
			movieID := args[0]
			return runFetch(cmd, func(ctx context.Context, a rottentomatoes.Args) (any, error) {
				return client.MovieReviews(ctx, movieID, a)
			}, params)
		},
	}
	addParamFlags(reviews, rottentomatoes.EndpointMovieReviews.Params)

	similar := &cobra.Command{
		Use:   "similar ID",
		Short: "Movies similar to a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := argsFromFlags(cmd, rottentomatoes.EndpointSimilarMovies.Params)
			if err != nil {
				return err
			}
			movieID := args[0]
			return runFetch(cmd, func(ctx context.Context, a rottentomatoes.Args) (any, error) {
				return client.SimilarMovies(ctx, movieID, a)
			}, params)
		},
	}
	addParamFlags(similar, rottentomatoes.EndpointSimilarMovies.Params)

	cmd.AddCommand(info, cast, reviews, similar)
	return cmd
}

func newAliasCmd() *cobra.Command {
	ep := rottentomatoes.EndpointMovieAlias
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Find a movie by an external identifier",
		Long: `Find a movie by an external identifier. Only IMDb identifiers are
supported by the API; pass the number without the "tt" prefix.`,
		Example: "  tomatoes alias --id 0031381",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := argsFromFlags(cmd, ep.Params)
			if err != nil {
				return err
			}
			if _, ok := params[rottentomatoes.ParamType]; !ok {
				params[rottentomatoes.ParamType] = "imdb"
			}
			return runFetch(cmd, client.MovieAlias, params)
		},
	}
	addParamFlags(cmd, ep.Params)
	// --id comes from paramFlags; a missing entry is a programming error
	if err := cmd.MarkFlagRequired("id"); err != nil {
		panic(err)
	}
	return cmd
}
