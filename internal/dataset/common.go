package dataset

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CommonCountries returns the countries present in both tables, sorted
// with English collation so names with diacritics land where a reader
// expects them.
func CommonCountries(mortality *MortalityTable, covid *CovidTable) []string {
	var common []string
	for _, country := range mortality.Countries() {
		if covid.HasCountry(country) {
			common = append(common, country)
		}
	}
	collate.New(language.English).SortStrings(common)
	return common
}
