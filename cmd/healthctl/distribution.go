package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newDistributionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Print category counts for the diabetes dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d records\n", ds.Len())
			for _, chart := range ds.Charts() {
				fmt.Fprintf(out, "\n%s\n", chart.Title)
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "CATEGORY\tCOUNT\tPERCENT\tPOSITIVE")
				for _, c := range chart.Counts {
					fmt.Fprintf(w, "%s\t%d\t%.1f%%\t%.1f%%\n", c.Label, c.Count, c.Percent, c.PositiveRate*100)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}

			path, _ := cmd.Flags().GetString("xlsx")
			if path == "" {
				return nil
			}
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := ds.WriteWorkbook(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nworkbook written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().String("xlsx", "", "Also write the charts to this xlsx file")
	return cmd
}
