package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"streetmatch/internal/street"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var (
		postalCode string
		place      string
		anyPlace   bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <address>",
		Short: "Find the corpus street closest to an address",
		Long: "Resolve searches the postal-code or place file named by the hint first and\n" +
			"falls back to the whole directory. Without a hint every postal code is searched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hint, err := resolveHint(postalCode, place, anyPlace)
			if err != nil {
				return err
			}
			eng, err := ctx.ensureEngine()
			if err != nil {
				return err
			}

			resolved, err := eng.ResolveAddress(cmd.Context(), args[0], hint)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, resolved)
			}

			out := cmd.OutOrStdout()
			if !resolved.Found() {
				fmt.Fprintf(out, "No match found for %q\n", args[0])
				return nil
			}
			r := newRenderer(out)
			fmt.Fprintf(out, "Match:      %s\n", r.match(resolved.Best.Text))
			fmt.Fprintf(out, "Similarity: %s\n", r.score(resolved.Best.Similarity))
			if resolved.ResolvedScope != "" {
				fmt.Fprintf(out, "Scope:      %s\n", r.scope(displayScope(resolved.ResolvedScope)))
			} else {
				fmt.Fprintf(out, "Source:     %s\n", r.dim(displayScope(resolved.Best.Source)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&postalCode, "plz", "", "Postal code to search first")
	cmd.Flags().StringVar(&place, "place", "", "Place name to search first")
	cmd.Flags().BoolVar(&anyPlace, "any-place", false, "Search every place file instead of postal codes")
	cmd.MarkFlagsMutuallyExclusive("plz", "place", "any-place")
	return cmd
}

func resolveHint(postalCode, place string, anyPlace bool) (street.Hint, error) {
	switch {
	case strings.TrimSpace(postalCode) != "":
		return street.ParsePostalCodeHint(postalCode)
	case strings.TrimSpace(place) != "":
		return street.PlaceHint(strings.TrimSpace(place)), nil
	case anyPlace:
		return street.AnyPlaceHint(), nil
	default:
		return street.Hint{}, nil
	}
}

// locationHint interprets a batch location column: digits name a postal
// code, anything else a place.
func locationHint(location string) (street.Hint, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return street.Hint{}, nil
	}
	if strings.Trim(location, "0123456789") == "" {
		return street.ParsePostalCodeHint(location)
	}
	return street.PlaceHint(location), nil
}
