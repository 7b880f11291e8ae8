package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"streetmatch/internal/textutil"
)

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <address>...",
		Short: "Print the comparison form of street addresses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := ctx.ensureEngine()
			if err != nil {
				return err
			}
			texts := make([]textutil.Text, 0, len(args))
			for _, arg := range args {
				texts = append(texts, eng.NormalizeAddress(arg))
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, texts)
			}
			out := cmd.OutOrStdout()
			for _, t := range texts {
				fmt.Fprintln(out, t.Cleaned)
			}
			return nil
		},
	}
}
