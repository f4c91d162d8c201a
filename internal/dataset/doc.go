// Package dataset loads the two externally-defined OWID CSV inputs into
// typed tables.
//
// Two schemas are supported:
//
//   - excess_mortality.csv: one row per (location, date) bucket with wide
//     per-year columns deaths_YYYY_all_ages. Buckets are weekly or monthly
//     per the time_unit column. Pre-2020 counts only appear on the rows of
//     the wide table's base year (2020), so rows are keyed by their week or
//     month ordinal and re-dated on demand.
//
//   - owid-covid-data.csv: one row per (location, date) day with COVID-19
//     deaths, vaccination percentages, testing counts and the lockdown
//     stringency index. Most of these columns are sparse.
//
// Tables are immutable once loaded. Column lookup is header-driven: extra
// columns are ignored, a missing required column is a LoadError naming the
// file and column, and a missing file is a LoadError with
// LoadCodeMissingFile.
package dataset
