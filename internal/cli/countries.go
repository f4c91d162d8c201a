package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msieczka/covidtoll/internal/dataset"
)

// CountryList is the success payload of --list-countries.
type CountryList struct {
	Count     int      `json:"count"`
	Countries []string `json:"countries"`
}

func runListCountries(opts *RootOptions, cmd *cobra.Command) error {
	setupLogging(opts.Verbose)
	formatter := newFormatter(opts, cmd)

	cfg, err := loadConfig(opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	mortality, covid, err := loadTables(cfg)
	if err != nil {
		return reportLoadError(formatter, err)
	}

	common := dataset.CommonCountries(mortality, covid)
	return formatter.Success(CountryList{Count: len(common), Countries: common}, func(w io.Writer) {
		fmt.Fprintf(w, "%d countries present in both input datasets:\n", len(common))
		for _, country := range common {
			fmt.Fprintf(w, "  %s\n", country)
		}
	})
}
