package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Skufu/healthassistant/internal/diagnosis"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <disease>",
		Short: "List a classifier's input fields in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := diagnosis.ParseDisease(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tKEY\tKIND\tLABEL")
			for i, f := range diagnosis.SchemaFor(d).Fields {
				label := f.Label
				if len(f.Options) > 0 {
					names := make([]string, len(f.Options))
					for j, o := range f.Options {
						names[j] = fmt.Sprintf("%g=%s", o.Value, o.Name)
					}
					label += " [" + strings.Join(names, ", ") + "]"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, f.Key, f.Kind, label)
			}
			return w.Flush()
		},
	}
}
