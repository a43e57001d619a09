package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "fortipass",
		Short:        "Password generation and strength analysis",
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("json", false, "print results as JSON")

	root.AddCommand(
		generateCommand(),
		analyzeCommand(),
		breachCommand(),
	)
	return root
}

func jsonOutput(c *cobra.Command) bool {
	v, _ := c.Flags().GetBool("json")
	return v
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
