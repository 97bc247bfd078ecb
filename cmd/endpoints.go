package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tomatoes/rottentomatoes"
)

func newEndpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "endpoints",
		Short:             "List the API endpoints and the parameters they accept",
		Args:              cobra.NoArgs,
		PersistentPreRunE: skipInit,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPATH\tPARAMETERS")
			for _, e := range rottentomatoes.Endpoints() {
				params := make([]string, len(e.Params))
				for i, p := range e.Params {
					params[i] = string(p)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Path, strings.Join(params, ", "))
			}
			return w.Flush()
		},
	}
}

func newCallCmd() *cobra.Command {
	var rawParams []string

	cmd := &cobra.Command{
		Use:   "call NAME [MOVIE_ID]",
		Short: "Call any endpoint by name",
		Long: `Call any endpoint by name (see "tomatoes endpoints"). Parameters are
passed as key=value pairs; keys the endpoint does not accept are dropped.`,
		Example: "  tomatoes call movie_reviews 770672122 --param review_type=top_critic",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, ok := rottentomatoes.EndpointByName(args[0])
			if !ok {
				return fmt.Errorf("unknown endpoint: %s", args[0])
			}

			var movieID string
			if endpoint.NeedsMovieID() {
				if len(args) < 2 {
					return fmt.Errorf("endpoint %s requires a movie ID", endpoint.Name)
				}
				movieID = args[1]
			}

			params := rottentomatoes.Args{}
			for _, kv := range rawParams {
				key, value, found := strings.Cut(kv, "=")
				if !found {
					return fmt.Errorf("invalid parameter %q (expected key=value)", kv)
				}
				params[rottentomatoes.Param(key)] = value
			}

			resp, err := client.Call(cmd.Context(), endpoint, movieID, params)
			if err != nil {
				return err
			}
			return render(resp)
		},
	}

	cmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, "query parameter as key=value (repeatable)")
	return cmd
}
