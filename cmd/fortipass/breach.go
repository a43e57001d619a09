package main

import (
	"fmt"
	"strings"

	"github.com/fortipass/fortipass-go/internal/breach"
	"github.com/spf13/cobra"
)

func breachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "breach <password>",
		Short: "Check a password against the local breach list",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			result := breach.NewChecker().Check(args[0])

			out := c.OutOrStdout()
			if jsonOutput(c) {
				return printJSON(out, result)
			}

			if !result.IsBreached {
				fmt.Fprintln(out, "Not found in known breaches")
				return nil
			}
			fmt.Fprintf(out, "Found in %d breached accounts (last breach %s): %s\n",
				result.BreachCount, result.LastBreach, strings.Join(result.Breaches, ", "))
			return nil
		},
	}
}
