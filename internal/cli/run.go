package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msieczka/covidtoll/internal/config"
	"github.com/msieczka/covidtoll/internal/dataset"
	"github.com/msieczka/covidtoll/internal/merge"
	"github.com/msieczka/covidtoll/internal/render"
)

// RunSummary is the success payload of one run.
type RunSummary struct {
	Country       string   `json:"country"`
	Year          int      `json:"year"`
	Lookback      int      `json:"lookback"`
	TimeUnit      string   `json:"time_unit"`
	Rows          int      `json:"rows"`
	BaselineYears []int    `json:"baseline_years,omitempty"`
	Coverage      []string `json:"coverage,omitempty"`
	ChartPath     string   `json:"chart_path"`
	CSVPath       string   `json:"csv_path"`
}

func runToll(opts *RootOptions, cmd *cobra.Command) error {
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

	res, err := merge.Merge(mortality, covid, merge.Options{
		Country:  opts.Country,
		Year:     opts.Year,
		Lookback: opts.Lookback,
	})
	if err != nil {
		return reportMergeError(formatter, err, mortality, covid)
	}
	slog.Debug("datasets merged",
		"trace_id", formatter.TraceID,
		"country", res.Country,
		"year", res.Year,
		"time_unit", res.Unit,
		"rows", len(res.Rows),
	)

	base := filepath.Join(cfg.Output.Dir, render.OutputBasename(res.Country, res.Year))

	png, err := render.Chart(res, render.ChartOptions{Width: cfg.Chart.Width, Height: cfg.Chart.Height})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to render chart", err)
	}
	if err := os.WriteFile(base+".png", png, 0o644); err != nil {
		return WrapExitError(ExitCommandError, "failed to write chart", err)
	}

	f, err := os.Create(base + ".csv")
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to write CSV extract", err)
	}
	if err := render.WriteCSV(f, res); err != nil {
		f.Close()
		return WrapExitError(ExitCommandError, "failed to write CSV extract", err)
	}
	if err := f.Close(); err != nil {
		return WrapExitError(ExitCommandError, "failed to write CSV extract", err)
	}

	summary := buildSummary(opts, res, base)
	return formatter.Success(summary, func(w io.Writer) {
		fmt.Fprintf(w, "%s, %d: %d rows merged (%s)\n", res.Country, res.Year, len(res.Rows), res.Unit)
		for _, line := range summary.Coverage {
			fmt.Fprintf(w, "  %s\n", line)
		}
		fmt.Fprintf(w, "Wrote %s and %s\n", summary.ChartPath, summary.CSVPath)
	})
}

func buildSummary(opts *RootOptions, res *merge.Result, base string) RunSummary {
	summary := RunSummary{
		Country:       res.Country,
		Year:          res.Year,
		Lookback:      opts.Lookback,
		TimeUnit:      string(res.Unit),
		Rows:          len(res.Rows),
		BaselineYears: res.BaselineYears,
		ChartPath:     base + ".png",
		CSVPath:       base + ".csv",
	}
	for _, cr := range res.Coverage {
		summary.Coverage = append(summary.Coverage,
			fmt.Sprintf("%s: %s..%s", cr.Column, cr.From.Format("2006-01-02"), cr.To.Format("2006-01-02")))
	}
	return summary
}

// reportLoadError prints the terminal report for an input that could not
// be loaded, carrying the load error's own code (missing file, bad
// header, bad row) rather than assuming a missing file.
func reportLoadError(formatter *OutputFormatter, err error) error {
	code := string(dataset.LoadCodeMissingFile)
	var le *dataset.LoadError
	if errors.As(err, &le) {
		code = string(le.Code)
	}
	_ = formatter.Error(code, err.Error(), nil)
	return WrapExitError(ExitCommandError, "failed to load input datasets", err)
}

// reportMergeError prints the terminal report for a data error and wraps
// it with the data exit code. Unknown countries get the list of usable
// countries appended, so the user can fix the flag without another run.
func reportMergeError(formatter *OutputFormatter, err error, mortality *dataset.MortalityTable, covid *dataset.CovidTable) error {
	switch {
	case merge.IsUnknownCountry(err):
		common := dataset.CommonCountries(mortality, covid)
		details := fmt.Sprintf("Set --country to one of the %d countries present in both input datasets: %s.",
			len(common), strings.Join(common, ", "))
		_ = formatter.Error(string(merge.ErrCodeUnknownCountry), err.Error(), details)
		return WrapExitError(ExitFailure, "unknown country", err)
	case merge.IsNoDataForYear(err):
		_ = formatter.Error(string(merge.ErrCodeNoDataForYear), err.Error(), nil)
		return WrapExitError(ExitFailure, "no data for year", err)
	default:
		return WrapExitError(ExitFailure, "merge failed", err)
	}
}

func loadConfig(opts *RootOptions) (*config.Config, error) {
	if opts.ConfigPath == "" {
		return config.Default(), nil
	}
	return config.Load(opts.ConfigPath)
}

func loadTables(cfg *config.Config) (*dataset.MortalityTable, *dataset.CovidTable, error) {
	slog.Debug("loading all-cause mortality", "path", cfg.Inputs.Mortality)
	mortality, err := dataset.LoadMortality(cfg.Inputs.Mortality)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("loading COVID-19 data", "path", cfg.Inputs.Covid)
	covid, err := dataset.LoadCovid(cfg.Inputs.Covid)
	if err != nil {
		return nil, nil, err
	}
	return mortality, covid, nil
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		TraceID:   uuid.NewString(),
	}
}

func setupLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
