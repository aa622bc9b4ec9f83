package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Skufu/healthassistant/internal/distribution"
)

func newBinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bin <rule> <value>",
		Short: "Print the category a value falls into",
		Long:  "Print the category a value falls into.\nRules: diabetes_pedigree, glucose, age, blood_pressure. Non-finite values are rejected.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := distribution.RuleByKey(args[0])
			if err != nil {
				return err
			}
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
				return fmt.Errorf("value %q is not a number", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), rule.Bin(value))
			return nil
		},
	}
	// Values may be negative, so flag parsing stops at the first positional argument.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
