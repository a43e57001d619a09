package main

import (
	"fmt"

	"github.com/fortipass/fortipass-go/internal/crypto"
	"github.com/spf13/cobra"
)

func analyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <password>",
		Short: "Score the strength of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			result := crypto.Analyze(args[0])

			out := c.OutOrStdout()
			if jsonOutput(c) {
				return printJSON(out, result)
			}

			fmt.Fprintf(out, "Score:        %d/100 (%s)\n", result.Score, result.Strength)
			fmt.Fprintf(out, "Entropy:      %d bits\n", result.Entropy)
			fmt.Fprintf(out, "Time to hack: %s\n", result.TimeToHack)
			for _, f := range result.Feedback {
				fmt.Fprintf(out, "  - %s\n", f)
			}
			return nil
		},
	}
}
