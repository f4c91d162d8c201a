package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msieczka/covidtoll/internal/version"
)

// RootOptions holds the flags of the one-shot run.
type RootOptions struct {
	Country       string
	Year          int
	Lookback      int
	ListCountries bool
	ConfigPath    string
	Verbose       bool
	Format        string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the covidtoll command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "covidtoll",
		Short: "Chart all-cause vs COVID-19 mortality for one country and year",
		Long: `Merge OWID's all-cause mortality and COVID-19 datasets for one country
and year, derive the non-COVID death count, and write a PNG chart plus a
CSV extract of the merged table to the output directory.

Example:
  covidtoll --country Poland --year 2020
  covidtoll --country "United States" --year 2021 --lookback 5
  covidtoll --list-countries`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if !opts.ListCountries && opts.Year == 0 {
				return NewExitError(ExitCommandError, "--year is required with --country")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ListCountries {
				return runListCountries(opts, cmd)
			}
			return runToll(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Country, "country", "", "country to process, e.g. 'Poland'")
	cmd.Flags().IntVar(&opts.Year, "year", 0, "year to process, e.g. 2020")
	cmd.Flags().IntVar(&opts.Lookback, "lookback", 10, "preceding years of all-cause mortality context")
	cmd.Flags().BoolVar(&opts.ListCountries, "list-countries", false, "list countries present in both input CSV files")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.MarkFlagsMutuallyExclusive("country", "list-countries")
	cmd.MarkFlagsOneRequired("country", "list-countries")

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
