package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Skufu/healthassistant/internal/diagnosis"
	"github.com/Skufu/healthassistant/internal/distribution"
	"github.com/Skufu/healthassistant/internal/oracle"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "healthctl",
		Short:        "Health assistant command line",
		Long:         "healthctl runs the disease classifiers and dataset summaries without the web server.",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("models", "", "Directory with classifier artifacts (defaults to the bundled ones)")
	root.PersistentFlags().String("data", "", "Diabetes dataset file, csv or xlsx (defaults to the bundled sample)")

	root.AddCommand(newPredictCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newBinCmd())
	root.AddCommand(newDistributionCmd())
	return root
}

func loadAssessor(cmd *cobra.Command) (*diagnosis.Assessor, error) {
	dir, _ := cmd.Flags().GetString("models")
	oracles, err := oracle.Load(dir)
	if err != nil {
		return nil, err
	}
	return diagnosis.NewAssessor(oracles)
}

func loadDataset(cmd *cobra.Command) (*distribution.Dataset, error) {
	records := distribution.SampleRecords()
	if path, _ := cmd.Flags().GetString("data"); path != "" {
		loaded, err := distribution.LoadRecords(path)
		if err != nil {
			return nil, err
		}
		records = loaded
	}
	return distribution.NewDataset(records)
}
