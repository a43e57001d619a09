package main

import (
	"fmt"

	"github.com/fortipass/fortipass-go/internal/crypto"
	"github.com/spf13/cobra"
)

const maxCount = 100

type generateFlags struct {
	length    int
	noUpper   bool
	noLower   bool
	noNumbers bool
	noSymbols bool
	count     int
}

func generateCommand() *cobra.Command {
	var f generateFlags
	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runGenerate(c, f)
		},
	}

	flags := c.Flags()
	flags.IntVarP(&f.length, "length", "l", crypto.DefaultOptions().Length, "password length")
	flags.BoolVar(&f.noUpper, "no-upper", false, "exclude uppercase letters")
	flags.BoolVar(&f.noLower, "no-lower", false, "exclude lowercase letters")
	flags.BoolVar(&f.noNumbers, "no-numbers", false, "exclude digits")
	flags.BoolVar(&f.noSymbols, "no-symbols", false, "exclude symbols")
	flags.IntVarP(&f.count, "count", "n", 1, "number of passwords to generate")
	return c
}

type generated struct {
	Password string                `json:"password"`
	Analysis crypto.StrengthResult `json:"analysis"`
}

func runGenerate(c *cobra.Command, f generateFlags) error {
	if f.count < 1 || f.count > maxCount {
		return fmt.Errorf("count must be between 1 and %d", maxCount)
	}

	opts := crypto.GeneratorOptions{
		Length:    f.length,
		Uppercase: !f.noUpper,
		Lowercase: !f.noLower,
		Numbers:   !f.noNumbers,
		Symbols:   !f.noSymbols,
	}

	results := make([]generated, 0, f.count)
	for i := 0; i < f.count; i++ {
		pw, err := crypto.Generate(opts)
		if err != nil {
			return err
		}
		results = append(results, generated{Password: pw, Analysis: crypto.Analyze(pw)})
	}

	out := c.OutOrStdout()
	if jsonOutput(c) {
		return printJSON(out, results)
	}
	for _, r := range results {
		fmt.Fprintf(out, "%s\t%s (%d)\n", r.Password, r.Analysis.Strength, r.Analysis.Score)
	}
	return nil
}
