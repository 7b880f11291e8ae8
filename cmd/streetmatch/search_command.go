package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"streetmatch/internal/similarity"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var (
		source      string
		sensitivity float64
		keep        int
		algorithm   string
		workers     int
		firstLetter bool
	)

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Rank corpus entries by similarity to free text",
		Long: "Search compares the text with every line of a corpus file or directory.\n" +
			"Without --source the postal-code directory is searched. Unset flags fall\n" +
			"back to the [matching] configuration.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := ctx.ensureEngine()
			if err != nil {
				return err
			}

			opts := eng.DefaultSearchOptions()
			flags := cmd.Flags()
			if flags.Changed("sensitivity") {
				opts.Sensitivity = sensitivity
			}
			if flags.Changed("keep") {
				opts.Keep = keep
			}
			if flags.Changed("algorithm") {
				algo, err := similarity.ParseAlgorithm(algorithm)
				if err != nil {
					return err
				}
				opts.Algorithm = algo
			}
			if flags.Changed("workers") {
				opts.Workers = workers
			}
			if flags.Changed("first-letter") {
				opts.FirstLetterFilter = firstLetter
			}

			target := strings.TrimSpace(source)
			if target == "" {
				target = eng.Config().Corpus.PostalCodeDir
			}

			result, err := eng.SearchText(cmd.Context(), args[0], target, opts)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			if len(result.Candidates) == 0 {
				fmt.Fprintf(out, "No candidates above sensitivity %s for %q\n", formatSimilarity(opts.Sensitivity), args[0])
				return nil
			}
			fmt.Fprintln(out, renderCandidates(newRenderer(out), result.Candidates))
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "Corpus file or directory to search")
	cmd.Flags().Float64Var(&sensitivity, "sensitivity", 0, "Minimum similarity (exclusive)")
	cmd.Flags().IntVarP(&keep, "keep", "k", 0, "Maximum number of candidates")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Similarity algorithm")
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel workers for directory searches (0 uses every CPU)")
	cmd.Flags().BoolVar(&firstLetter, "first-letter", false, "Only score lines sharing the first letter")
	return cmd
}
