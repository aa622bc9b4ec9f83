package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Skufu/healthassistant/internal/apperr"
	"github.com/Skufu/healthassistant/internal/diagnosis"
)

func newPredictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict <disease> <value>...",
		Short: "Run a classifier on values given in schema order",
		Long: "Run a classifier on values given in schema order.\n" +
			"Diseases: diabetes, heart, parkinsons. Use `healthctl schema <disease>` to list the fields.\n" +
			"Flags go before the disease name; everything after it is read as a value, so negatives like -4.81 work.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := diagnosis.ParseDisease(args[0])
			if err != nil {
				return err
			}

			schema := diagnosis.SchemaFor(d)
			values := args[1:]
			if len(values) != schema.Len() {
				return fmt.Errorf("%s takes %d values, got %d", d.Slug(), schema.Len(), len(values))
			}

			assessor, err := loadAssessor(cmd)
			if err != nil {
				return err
			}

			form := make(map[string]string, len(values))
			for i, key := range schema.Keys() {
				form[key] = values[i]
			}

			result, err := assessor.AssessValues(d, diagnosis.MapValues(form))
			if err != nil {
				if apperr.Is(err, apperr.CodeInvalidInput) || apperr.Is(err, apperr.CodeParseError) {
					appErr, _ := apperr.As(err)
					fmt.Fprintf(cmd.ErrOrStderr(), "%s (%s)\n", appErr.Message, strings.Join(appErr.Fields, ", "))
				}
				return err
			}

			out := cmd.OutOrStdout()
			style := negativeStyle
			if result.Label.Positive() {
				style = positiveStyle
			}
			fmt.Fprintln(out, style.Render(result.Message))
			if len(result.Tips) > 0 {
				fmt.Fprintf(out, "\n%s\n", headingStyle.Render(diagnosis.TipsHeading))
				for _, tip := range result.Tips {
					fmt.Fprintf(out, "  - %s\n", tip)
				}
			}
			return nil
		},
	}
	// Values may be negative, so flag parsing stops at the first positional argument.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
