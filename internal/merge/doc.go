// Package merge aligns the loaded mortality and COVID-19 tables for one
// country and year into a single ordered table.
//
// The merge is a pure transform:
//
//  1. Both sources are filtered to the requested country.
//  2. All-cause mortality is kept for the lookback window
//     [year-lookback, year]; the COVID-19 columns only exist for the
//     target year.
//  3. Daily COVID-19 data is resampled to the mortality granularity
//     (ISO weeks ending Sunday, or calendar months).
//  4. Per aligned bucket, non-COVID deaths are derived as the exact,
//     unclamped difference all_cause_deaths - covid_deaths, and a
//     baseline min/mean/max over the lookback years is attached.
//
// Output rows are unique per date and strictly chronological. A source
// missing a value for a bucket yields a nil marker in that column, not
// an error; missing the whole country or the whole target year is a
// typed Error.
package merge
