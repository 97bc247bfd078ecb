package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/tomatoes/rottentomatoes"
)

// paramFlag describes the command line flag for an API parameter
type paramFlag struct {
	name    string
	usage   string
	integer bool
}

var paramFlags = map[rottentomatoes.Param]paramFlag{
	rottentomatoes.ParamPage:       {name: "page", usage: "page of results to fetch", integer: true},
	rottentomatoes.ParamPageLimit:  {name: "page-limit", usage: "number of results per page", integer: true},
	rottentomatoes.ParamLimit:      {name: "limit", usage: "maximum number of results", integer: true},
	rottentomatoes.ParamCountry:    {name: "country", usage: "two letter country code"},
	rottentomatoes.ParamReviewType: {name: "review-type", usage: "review type (all, top_critic or dvd)"},
	rottentomatoes.ParamType:       {name: "type", usage: "alias type"},
	rottentomatoes.ParamID:         {name: "id", usage: "alias identifier"},
}

// addParamFlags registers a flag for each endpoint parameter that has one
func addParamFlags(cmd *cobra.Command, params []rottentomatoes.Param) {
	for _, p := range params {
		pf, ok := paramFlags[p]
		if !ok {
			continue
		}
		if pf.integer {
			cmd.Flags().Int(pf.name, 0, pf.usage)
		} else {
			cmd.Flags().String(pf.name, "", pf.usage)
		}
	}
}

// argsFromFlags collects the parameters whose flags were set explicitly
func argsFromFlags(cmd *cobra.Command, params []rottentomatoes.Param) (rottentomatoes.Args, error) {
	args := rottentomatoes.Args{}
	for _, p := range params {
		pf, ok := paramFlags[p]
		if !ok || !cmd.Flags().Changed(pf.name) {
			continue
		}
		if pf.integer {
			v, err := cmd.Flags().GetInt(pf.name)
			if err != nil {
				return nil, err
			}
			args[p] = v
		} else {
			v, err := cmd.Flags().GetString(pf.name)
			if err != nil {
				return nil, err
			}
			args[p] = v
		}
	}
	return args, nil
}
