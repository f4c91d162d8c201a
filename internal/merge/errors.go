package merge

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes merge failures.
type ErrorCode string

const (
	// ErrCodeUnknownCountry indicates the requested country is absent
	// from a required source.
	ErrCodeUnknownCountry ErrorCode = "UNKNOWN_COUNTRY"

	// ErrCodeNoDataForYear indicates the target year has no all-cause
	// mortality rows for the requested country.
	ErrCodeNoDataForYear ErrorCode = "NO_DATA_FOR_YEAR"
)

// Error describes a merge failure. It names the offending input so the
// message can stand on its own as the terminal report of a one-shot run.
type Error struct {
	Code    ErrorCode
	Country string
	Year    int    // set for ErrCodeNoDataForYear
	Source  string // set for ErrCodeUnknownCountry
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeUnknownCountry:
		return fmt.Sprintf("%s: country %q is not present in the %s dataset", e.Code, e.Country, e.Source)
	case ErrCodeNoDataForYear:
		return fmt.Sprintf("%s: no all-cause mortality data for %q in %d", e.Code, e.Country, e.Year)
	}
	return fmt.Sprintf("%s: country %q", e.Code, e.Country)
}

// IsUnknownCountry reports whether err is an unknown-country error.
// Uses errors.As to handle wrapped errors.
func IsUnknownCountry(err error) bool {
	var me *Error
	if errors.As(err, &me) {
		return me.Code == ErrCodeUnknownCountry
	}
	return false
}

// IsNoDataForYear reports whether err is a no-data-for-year error.
// Uses errors.As to handle wrapped errors.
func IsNoDataForYear(err error) bool {
	var me *Error
	if errors.As(err, &me) {
		return me.Code == ErrCodeNoDataForYear
	}
	return false
}

// NewUnknownCountryError creates an Error for a country missing from the
// named source dataset.
func NewUnknownCountryError(country, source string) *Error {
	return &Error{Code: ErrCodeUnknownCountry, Country: country, Source: source}
}

// NewNoDataForYearError creates an Error for a target year with no
// mortality rows.
func NewNoDataForYearError(country string, year int) *Error {
	return &Error{Code: ErrCodeNoDataForYear, Country: country, Year: year}
}
